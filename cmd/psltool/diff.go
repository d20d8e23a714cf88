package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/creachadair/command"
	"github.com/creachadair/mds/mdiff"
	"github.com/ebenson6295/etld/internal/matcher"
	"github.com/ebenson6295/etld/internal/pslformat"
)

// runDiff compares how two PSL files segment the same list of
// hostnames and prints a unified diff of the two segmentations.
func runDiff(env *command.Env, pslFileA, pslFileB, domainsFile string) error {
	ma, err := loadMatcher(pslFileA)
	if err != nil {
		return err
	}
	mb, err := loadMatcher(pslFileB)
	if err != nil {
		return err
	}

	hosts, err := readLines(domainsFile)
	if err != nil {
		return err
	}

	lhs := segment(ma, hosts)
	rhs := segment(mb, hosts)

	d := mdiff.New(lhs, rhs).AddContext(3)
	mdiff.FormatUnified(env, d, &mdiff.FileInfo{
		Left:  pslFileA,
		Right: pslFileB,
	})
	return nil
}

func loadMatcher(pslFile string) (*matcher.Matcher, error) {
	bs, err := readFile(pslFile)
	if err != nil {
		return nil, err
	}
	res := pslformat.Parse(bs)
	return matcher.New(res.Rules), nil
}

func segment(m *matcher.Matcher, hosts []string) []string {
	lines := make([]string, len(hosts))
	for i, h := range hosts {
		info := m.MatchString(h)
		lines[i] = fmt.Sprintf("%s\ttld=%q domain=%q subdomain=%q", h, info.TLD, info.Domain, info.Subdomain)
	}
	return lines
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return lines, nil
}
