// SPDX-License-Identifier: MPL-2.0

//go:build unix

package launcher

import "golang.org/x/sys/unix"

// execReplace replaces the current process image via execve(2). Open
// descriptors are inherited by the new image. It returns only when the
// kernel refused the replacement.
func execReplace(argv0 string, argv []string, envv []string) error {
	return unix.Exec(argv0, argv, envv)
}
