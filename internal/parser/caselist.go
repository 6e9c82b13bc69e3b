package parser

import (
	"bufio"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"caselists/internal/domain"

	"github.com/rotisserie/eris"
)

const (
	testPrefix = "TEST:"
	groupType  = "TestGroup"
)

// CaseListParser parses txt and xml case lists written by glcts
type CaseListParser struct{}

// NewCaseListParser creates a new CaseListParser
func NewCaseListParser() *CaseListParser {
	return &CaseListParser{}
}

// ReadCases returns the full names of all test cases in the file, in file order
func (p *CaseListParser) ReadCases(path string, caseListType domain.CaseListType) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "error reading case list %s", path)
	}
	defer f.Close()

	var cases []string
	switch caseListType {
	case domain.CaseListTxt:
		cases, err = p.parseTxt(f)
	case domain.CaseListXML:
		cases, err = p.parseXML(f)
	default:
		return nil, eris.Errorf("unsupported case list type %q", caseListType)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "failed to parse %s", path)
	}
	return cases, nil
}

// CountCases returns the number of test cases in the file
func (p *CaseListParser) CountCases(path string, caseListType domain.CaseListType) (int, error) {
	cases, err := p.ReadCases(path, caseListType)
	if err != nil {
		return 0, err
	}
	return len(cases), nil
}

// parseTxt collects "TEST: <name>" lines; GROUP lines only describe the hierarchy
func (p *CaseListParser) parseTxt(r io.Reader) ([]string, error) {
	var cases []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, testPrefix) {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(line, testPrefix))
		if name != "" {
			cases = append(cases, name)
		}
	}
	return cases, scanner.Err()
}

// parseXML walks nested <TestCase Name=".." CaseType=".."> elements and
// returns the dot-joined names of every non-group element
func (p *CaseListParser) parseXML(r io.Reader) ([]string, error) {
	type frame struct {
		name  string
		group bool
	}

	var cases []string
	var stack []frame
	decoder := xml.NewDecoder(r)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local != "TestCase" {
				continue
			}
			f := frame{}
			for _, attr := range el.Attr {
				switch attr.Name.Local {
				case "Name":
					f.name = attr.Value
				case "CaseType":
					f.group = attr.Value == groupType
				}
			}
			stack = append(stack, f)
			if !f.group {
				names := make([]string, len(stack))
				for i, s := range stack {
					names[i] = s.name
				}
				cases = append(cases, strings.Join(names, "."))
			}
		case xml.EndElement:
			if el.Name.Local == "TestCase" && len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return cases, nil
}
