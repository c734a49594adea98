// Package doctor performs environment diagnostics: required tools, auth
// state, registry health, and release root resolution.
package doctor

import (
	"context"
	"fmt"

	"github.com/bask185/forgeport/internal/config"
	"github.com/bask185/forgeport/internal/forge"
	"github.com/bask185/forgeport/internal/git"
	"github.com/bask185/forgeport/internal/github"
	"github.com/bask185/forgeport/internal/registry"
	"github.com/bask185/forgeport/internal/release"
)

// Status classifies a check result.
type Status string

const (
	StatusOK   Status = "ok"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// Check is one diagnostic result.
type Check struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Report holds all check results.
type Report struct {
	Checks []Check `json:"checks"`
}

// Failed returns true when any check failed.
func (r *Report) Failed() bool {
	for _, c := range r.Checks {
		if c.Status == StatusFail {
			return true
		}
	}
	return false
}

func (r *Report) add(name string, status Status, detail string) {
	r.Checks = append(r.Checks, Check{Name: name, Status: status, Detail: detail})
}

// Run executes all diagnostics. It never returns an error; problems are
// reported as failed checks.
func Run(ctx context.Context, cfg *config.Config) *Report {
	report := &Report{}

	checkGit(report)
	checkGH(ctx, report, cfg)
	checkRegistry(report, cfg)
	checkReleaseRoot(report, cfg)
	checkAPIToken(ctx, report, cfg)

	return report
}

func checkGit(report *Report) {
	if err := git.CheckGit(); err != nil {
		report.add("git installed", StatusFail, err.Error())
		return
	}
	report.add("git installed", StatusOK, "")
}

func checkGH(ctx context.Context, report *Report, cfg *config.Config) {
	if err := github.Check(ctx); err != nil {
		report.add("gh authenticated", StatusFail, err.Error())
		return
	}
	report.add("gh authenticated", StatusOK, "")

	user := cfg.Migrate.User
	if user == "" {
		report.add("gh identity", StatusWarn, "no push user configured (migrate.user)")
		return
	}
	who := github.Login(ctx)
	if who != user {
		report.add("gh identity", StatusFail,
			fmt.Sprintf("gh is logged in as %q, expected %q", who, user))
		return
	}
	report.add("gh identity", StatusOK, user)
}

func checkRegistry(report *Report, cfg *config.Config) {
	reg, err := registry.Load(cfg.Registry)
	if err != nil {
		report.add("registry", StatusFail, err.Error())
		return
	}
	if len(reg.Repos) == 0 {
		report.add("registry", StatusWarn, fmt.Sprintf("%s has no entries", cfg.Registry))
		return
	}

	invalid := 0
	for _, repo := range reg.Repos {
		if registry.ValidateName(repo.Name) != nil {
			invalid++
			continue
		}
		if _, err := forge.ParseRemote(repo.SSH); err != nil {
			invalid++
		}
	}
	if invalid > 0 {
		report.add("registry", StatusWarn,
			fmt.Sprintf("%d entries, %d with an invalid name or URL", len(reg.Repos), invalid))
		return
	}
	report.add("registry", StatusOK, fmt.Sprintf("%d entries", len(reg.Repos)))
}

func checkReleaseRoot(report *Report, cfg *config.Config) {
	root, err := release.ResolvePublicRoot(cfg.Release.PublicRoot)
	if err != nil {
		report.add("release root", StatusWarn, "not resolvable (only needed for `forgeport release`)")
		return
	}
	report.add("release root", StatusOK, root)
}

func checkAPIToken(ctx context.Context, report *Report, cfg *config.Config) {
	client, err := github.NewAPIClient(cfg.TokenEnv)
	if err != nil {
		report.add("api token", StatusFail, err.Error())
		return
	}
	if client == nil {
		report.add("api token", StatusWarn,
			fmt.Sprintf("$%s not set (API metadata disabled)", cfg.TokenEnv))
		return
	}
	login, err := client.CheckToken(ctx)
	if err != nil {
		report.add("api token", StatusFail, err.Error())
		return
	}
	report.add("api token", StatusOK, login)
}
