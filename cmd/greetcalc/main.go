// Copyright (c) 2025 Greetcalc Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package main

import "greetcalc/internal/cli"

func main() {
	cli.Execute()
}
