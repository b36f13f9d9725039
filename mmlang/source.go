package mmlang

import "strings"

type Source struct {
	Name  string
	Lines []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:  name,
		Lines: strings.Split(content, "\n"),
	}
}

type Pos struct {
	Source *Source
	Offset int
	Line   int
	Column int
}
