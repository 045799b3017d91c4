// Command planparse runs the rule-based Korean plan parser from the terminal.
//
//	planparse "9시 30분에 회의, 저녁에 운동"
//	echo "3시에 미팅" | planparse --json --now "2026-10-17 09:15"
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
