// Package parser turns a command line into a commands.Command. Every failure
// here is an apperr Format error; state checks happen at execution.
package parser

import (
	"slices"
	"strings"
	"unicode"

	"clientbook/internal/apperr"
	"clientbook/internal/commands"
)

type parseFunc func(args string) (commands.Command, error)

type entry struct {
	parse parseFunc
	usage string
}

var registry = map[string]entry{
	commands.AddClientWord:       {parseAddClient, commands.AddClientUsage},
	commands.DeleteClientWord:    {parseDeleteClient, commands.DeleteClientUsage},
	commands.ListWord:            {parseList, commands.ListUsage},
	commands.FindWord:            {parseFind, commands.FindUsage},
	commands.AddInsuranceWord:    {parseAddInsurance, commands.AddInsuranceUsage},
	commands.DeleteInsuranceWord: {parseDeleteInsurance, commands.DeleteInsuranceUsage},
	commands.AddClaimWord:        {parseAddClaim, commands.AddClaimUsage},
	commands.CloseClaimWord:      {parseCloseClaim, commands.CloseClaimUsage},
	commands.DeleteClaimWord:     {parseDeleteClaim, commands.DeleteClaimUsage},
	commands.ListClaimsWord:      {parseListClaims, commands.ListClaimsUsage},
}

// Parse splits off the command word and hands the rest to that command's parser.
func Parse(line string) (commands.Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, apperr.NewFormat(apperr.CodeInvalidFormat, apperr.MessageInvalidCommandFormat, HelpText())
	}
	word, args := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		word, args = line[:i], line[i:]
	}
	e, ok := registry[word]
	if !ok {
		return nil, apperr.NewFormat(apperr.CodeUnknownCommand, apperr.MessageUnknownCommand+": "+word, "")
	}
	return e.parse(args)
}

// Words lists the known command words in sorted order.
func Words() []string {
	words := make([]string, 0, len(registry))
	for w := range registry {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

// Usage returns the usage text of a command word.
func Usage(word string) (string, bool) {
	e, ok := registry[word]
	return e.usage, ok
}

// HelpText joins the usage of every command.
func HelpText() string {
	var b strings.Builder
	for i, w := range Words() {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(registry[w].usage)
	}
	return b.String()
}

func invalidFormat(usage string) error {
	return apperr.NewFormat(apperr.CodeInvalidFormat, apperr.MessageInvalidCommandFormat, usage)
}
