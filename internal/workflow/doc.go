// Package workflow models declarative CI workflow definitions: a trigger, a
// mapping of named jobs with toolchain matrices and ordered steps, and the
// needs constraints gating one job group on another. The package loads,
// validates, and plans definitions; executing them is the hosting CI
// platform's responsibility.
package workflow
