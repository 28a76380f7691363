// SPDX-License-Identifier: Apache-2.0

package remover

import (
	"context"

	"github.com/bluet/syspkg"
	"github.com/bluet/syspkg/manager"
	"github.com/rs/zerolog"
)

// DetectPackageManager returns the syspkg manager with the given name, or the
// first available one on this host when name is empty.
func DetectPackageManager(name string) (syspkg.PackageManager, error) {
	includeOptions := syspkg.IncludeOptions{AllAvailable: true}
	sysPackageManager, err := syspkg.New(includeOptions)
	if err != nil {
		return nil, NewConfigurationError(err, "no system package manager available")
	}

	pm, err := sysPackageManager.GetPackageManager(name)
	if err != nil {
		return nil, NewConfigurationError(err, "system package manager '"+name+"' not found")
	}

	return pm, nil
}

// SystemRemover removes packages through the host's system package manager.
type SystemRemover struct {
	logger     *zerolog.Logger
	name       string
	pkgManager syspkg.PackageManager
	pkgOptions manager.Options
}

func (r *SystemRemover) Remove(ctx context.Context, name string) Status {
	r.logger.Debug().
		Str("manager", r.managerName()).
		Str("package", name).
		Msg("Deleting system package")

	if _, err := r.pkgManager.Delete([]string{name}, &r.pkgOptions); err != nil {
		return failed(name, ExitCodeNotRun, NewUninstallationError(err, name, r.managerName(), ExitCodeNotRun))
	}

	return succeeded(name)
}

func (r *SystemRemover) managerName() string {
	if r.name == "" {
		return "system"
	}
	return r.name
}

func NewSystemRemover(managerName string, opts ...Option) (*SystemRemover, error) {
	o := &options{
		logger: nopLogger(),
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.pkgManager == nil {
		pm, err := DetectPackageManager(managerName)
		if err != nil {
			return nil, err
		}
		o.pkgManager = pm
	}

	return &SystemRemover{
		logger:     o.logger,
		name:       managerName,
		pkgManager: o.pkgManager,
		pkgOptions: manager.Options{DryRun: false, Interactive: false, AssumeYes: true},
	}, nil
}
