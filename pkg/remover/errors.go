// SPDX-License-Identifier: Apache-2.0

package remover

import (
	"github.com/joomcode/errorx"
)

var (
	ErrorsNamespace     = errorx.NewNamespace("remover")
	UninstallationError = ErrorsNamespace.NewType("uninstallation_error")
	ConfigurationError  = ErrorsNamespace.NewType("configuration_error")

	packageNameProperty = errorx.RegisterPrintableProperty("package_name")
	managerProperty     = errorx.RegisterPrintableProperty("manager")
	exitCodeProperty    = errorx.RegisterPrintableProperty("exit_code")
)

const (
	uninstallationErrorMsg = "failed to uninstall package '%s' using '%s'"
	configurationErrorMsg  = "invalid remover configuration: %s"
)

func NewUninstallationError(cause error, packageName, manager string, exitCode int) *errorx.Error {
	err := UninstallationError.New(uninstallationErrorMsg, packageName, manager).
		WithProperty(packageNameProperty, packageName).
		WithProperty(managerProperty, manager).
		WithProperty(exitCodeProperty, exitCode)

	if cause != nil {
		err = err.WithUnderlyingErrors(cause)
	}

	return err
}

func NewConfigurationError(cause error, reason string) *errorx.Error {
	err := ConfigurationError.New(configurationErrorMsg, reason)

	if cause != nil {
		err = err.WithUnderlyingErrors(cause)
	}

	return err
}

// PackageName extracts the package name recorded on an uninstallation error.
func PackageName(err error) (string, bool) {
	v, ok := errorx.ExtractProperty(err, packageNameProperty)
	if !ok {
		return "", false
	}

	s, ok := v.(string)
	return s, ok
}

// ExitCode extracts the exit code recorded on an uninstallation error.
func ExitCode(err error) (int, bool) {
	v, ok := errorx.ExtractProperty(err, exitCodeProperty)
	if !ok {
		return 0, false
	}

	c, ok := v.(int)
	return c, ok
}
