package tradebook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrNoAccount is returned when no journal file matches a query.
var ErrNoAccount = errors.New("no account found")

// journalExt is the extension of journal files.
const journalExt = ".jsonl"

// Account is a named set of raw records, as stored in one journal file.
type Account struct {
	Name    string
	Records []Record
}

// FindAccount return the unique account corresponding with the name.
// If there is only one account found, returns it.
// In any other cases it returns an error.
func FindAccount(path, query string) (*Account, error) {
	paths, err := findAccountPaths(path, query)
	if err != nil {
		return nil, err
	}
	switch len(paths) {
	case 0:
		if query == "" {
			return nil, fmt.Errorf("%w in %q", ErrNoAccount, path)
		}
		return nil, fmt.Errorf("%w for %q", ErrNoAccount, query)
	case 1:
		return loadAccountFile(path, paths[0])
	default:
		return nil, fmt.Errorf("multiple accounts found for %q, pick one with -a", query)
	}
}

// FindAccounts discovers and loads journal files from a given path.
// If query is empty, all accounts (.jsonl files) in the path are loaded.
// If query specifies an account name (e.g., "john/futures"), only that account is loaded.
// An account name is its relative path from the journal path, without the .jsonl extension.
func FindAccounts(path, query string) ([]*Account, error) {
	paths, err := findAccountPaths(path, query)
	if err != nil {
		return nil, err
	}

	var accounts []*Account
	var errs error
	for _, fullPath := range paths {
		account, err := loadAccountFile(path, fullPath)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		accounts = append(accounts, account)
	}
	return accounts, errs
}

// loadAccountFile opens and decodes an account from a given file path.
// It sets the account's name based on its relative path to the journal root.
func loadAccountFile(root, fullPath string) (*Account, error) {
	relPath, err := filepath.Rel(root, fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not determine relative path for %q: %w", fullPath, err)
	}

	f, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not open journal file %q: %w", fullPath, err)
	}
	defer f.Close()

	records, err := DecodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode journal file %q: %w", fullPath, err)
	}
	return &Account{
		Name:    filepath.ToSlash(strings.TrimSuffix(relPath, journalExt)),
		Records: records,
	}, nil
}

// findAccountPaths scans a directory and returns the journal files matching the query.
func findAccountPaths(path, query string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, journalExt) {
			return nil
		}
		relPath, err := filepath.Rel(path, p)
		if err != nil {
			// This should not happen if p is in path
			return err
		}
		name := filepath.ToSlash(strings.TrimSuffix(relPath, journalExt))
		if query == "" || name == query {
			paths = append(paths, p)
		}
		return nil
	})
	return paths, err
}

// ListAccounts returns the names of every account under path, sorted.
func ListAccounts(path string) ([]string, error) {
	paths, err := findAccountPaths(path, "")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(path, p)
		if err != nil {
			return nil, err
		}
		names = append(names, filepath.ToSlash(strings.TrimSuffix(rel, journalExt)))
	}
	slices.Sort(names)
	return names, nil
}
