package domain

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// CaseListType selects the case-list format the binary writes
type CaseListType string

const (
	// CaseListTxt is the plain "GROUP:/TEST:" line format
	CaseListTxt CaseListType = "txt"
	// CaseListXML is the nested <TestCase> format
	CaseListXML CaseListType = "xml"
)

// CaseListTypes lists the supported case-list types
var CaseListTypes = []CaseListType{CaseListTxt, CaseListXML}

// ParseCaseListType converts a user supplied string into a CaseListType
func ParseCaseListType(s string) (CaseListType, error) {
	t := CaseListType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range CaseListTypes {
		if t == known {
			return t, nil
		}
	}
	return "", eris.Errorf("unknown case list type %q (supported: txt, xml)", s)
}

// RunMode returns the value passed to --deqp-runmode
func (t CaseListType) RunMode() string {
	return fmt.Sprintf("%s-caselist", t)
}

// FileName returns the case-list file name the binary writes for a module
func (t CaseListType) FileName(module Module) string {
	return fmt.Sprintf("%s-cases.%s", module.Name, t)
}
