// SPDX-License-Identifier: MPL-2.0

// Package corpus reads fortune corpora from disk.
//
// A corpus is one or more directories of plain UTF-8 text files. The reader
// lists regular files with their byte sizes and reads file contents on
// demand. Nothing is cached: every invocation sees the filesystem as it is.
package corpus
