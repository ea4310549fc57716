// SPDX-License-Identifier: MPL-2.0

package main

import cmd "deskscout-cli/cmd/deskscout"

func main() {
	cmd.Execute()
}
