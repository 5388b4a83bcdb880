/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import "io"

type Usecase interface {
	SearchExtensions(root string, extensions []string, out io.Writer) error
}
