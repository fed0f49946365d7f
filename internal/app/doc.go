// Package app assembles the patchdemo service from its configuration.
package app
