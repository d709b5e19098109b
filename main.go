// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/fortune-kind/fortune-kind/cmd/fortune"

func main() {
	cmd.Execute()
}
