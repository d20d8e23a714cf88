package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/creachadair/command"
	"github.com/creachadair/taskgroup"
	"github.com/ebenson6295/etld/internal/matcher"
	"github.com/ebenson6295/etld/internal/pslformat"
	"golang.org/x/net/idna"
)

var queryArgs struct {
	IDNA    bool `flag:"idna,Normalize the queried hostname with IDNA/Punycode before matching"`
	Workers int  `flag:"j,default=1,Number of concurrent workers to use when the domain argument names a file of hostnames"`
}

// runQuery parses a PSL file, builds a Matcher from it, and prints
// the TLD/domain/subdomain split of one hostname, or of every
// hostname in a file if domainOrFile names an existing file.
//
// The core Matcher never normalizes its input (see the package doc
// for internal/domain); IDNA normalization here is an opt-in
// convenience for callers of this CLI, not a behavior of the engine
// itself.
func runQuery(env *command.Env, pslFile, domainOrFile string) error {
	bs, err := readFile(pslFile)
	if err != nil {
		return err
	}
	res := pslformat.Parse(bs)
	m := matcher.New(res.Rules)

	if fi, err := os.Stat(domainOrFile); err == nil && !fi.IsDir() {
		return runQueryFile(env, m, domainOrFile)
	}

	return printQuery(env, m, domainOrFile)
}

func printQuery(env *command.Env, m *matcher.Matcher, host string) error {
	if queryArgs.IDNA {
		normalized, err := idna.Lookup.ToASCII(host)
		if err != nil {
			return fmt.Errorf("failed to normalize %q: %w", host, err)
		}
		host = normalized
	}

	info := m.MatchString(host)
	fmt.Fprintf(env, "tld=%q domain=%q subdomain=%q\n", info.TLD, info.Domain, info.Subdomain)
	return nil
}

// runQueryFile queries every hostname in the file at path,
// concurrently, using queryArgs.Workers workers.
func runQueryFile(env *command.Env, m *matcher.Matcher, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	var hosts []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			hosts = append(hosts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %q: %w", path, err)
	}

	workers := queryArgs.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]string, len(hosts))
	g, start := taskgroup.New(nil).Limit(workers)
	for i, host := range hosts {
		i, host := i, host
		start(func() error {
			query := host
			if queryArgs.IDNA {
				normalized, err := idna.Lookup.ToASCII(host)
				if err != nil {
					return fmt.Errorf("failed to normalize %q: %w", host, err)
				}
				query = normalized
			}
			info := m.MatchString(query)
			results[i] = fmt.Sprintf("%s\ttld=%q domain=%q subdomain=%q", host, info.TLD, info.Domain, info.Subdomain)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, line := range results {
		fmt.Fprintln(env, line)
	}
	return nil
}
