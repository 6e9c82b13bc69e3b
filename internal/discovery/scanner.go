package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"caselists/internal/domain"

	"github.com/rotisserie/eris"
)

const caseListMarker = "-cases."

// CaseListFile is a case-list file found on disk
type CaseListFile struct {
	Module string
	Type   domain.CaseListType
	Path   string
	Size   int64
}

// Scanner finds case-list files in a directory
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns the "<module>-cases.<type>" files directly inside root, sorted by name
func (s *Scanner) Scan(root string) ([]CaseListFile, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to open case list directory %s", root)
	}
	if !info.IsDir() {
		return nil, eris.Errorf("case list path is not a directory: %s", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read %s", root)
	}

	var files []CaseListFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		module, caseListType, ok := ParseFileName(entry.Name())
		if !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, eris.Wrapf(err, "failed to stat %s", entry.Name())
		}

		files = append(files, CaseListFile{
			Module: module,
			Type:   caseListType,
			Path:   filepath.Join(root, entry.Name()),
			Size:   info.Size(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return filepath.Base(files[i].Path) < filepath.Base(files[j].Path)
	})
	return files, nil
}

// ParseFileName splits "<module>-cases.<type>" into its parts
func ParseFileName(name string) (string, domain.CaseListType, bool) {
	idx := strings.LastIndex(name, caseListMarker)
	if idx <= 0 {
		return "", "", false
	}

	caseListType, err := domain.ParseCaseListType(name[idx+len(caseListMarker):])
	if err != nil || string(caseListType) != name[idx+len(caseListMarker):] {
		return "", "", false
	}
	return name[:idx], caseListType, true
}
