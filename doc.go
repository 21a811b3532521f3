/*
Package objname documents the objname module.

This module is CLI-first and ships the objname command:

	go install github.com/nuetzliches/objname/cmd/objname@latest

The reserved-character codec lives in internal/namecodec and name
composition in internal/objectname. Implementation packages are internal
and are not a stable public Go API.
*/
package objname
