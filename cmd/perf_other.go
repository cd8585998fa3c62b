//go:build !linux

package cmd

import "fmt"

func measureInstructions(f func() error) error {
	fmt.Println("instruction counting is only available on linux")
	return f()
}
