package parser

import (
	"strings"

	"clientbook/internal/apperr"
	"clientbook/internal/commands"
)

func parseAddClient(args string) (commands.Command, error) {
	am := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress)
	if !am.Present(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress) || am.Preamble() != "" {
		return nil, invalidFormat(commands.AddClientUsage)
	}
	if err := am.VerifyNoDuplicates(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress); err != nil {
		return nil, err
	}
	name, _ := am.Value(PrefixName)
	phone, _ := am.Value(PrefixPhone)
	email, _ := am.Value(PrefixEmail)
	address, _ := am.Value(PrefixAddress)

	f, err := ParseClient(name, phone, email, address)
	if err != nil {
		return nil, apperr.WithUsage(err, commands.AddClientUsage)
	}
	return commands.NewAddClient(f.Name, f.Phone, f.Email, f.Address), nil
}

func parseDeleteClient(args string) (commands.Command, error) {
	idx, err := ParseIndex(args)
	if err != nil {
		return nil, apperr.WithUsage(err, commands.DeleteClientUsage)
	}
	return commands.NewDeleteClient(idx), nil
}

func parseList(string) (commands.Command, error) {
	return commands.List{}, nil
}

func parseFind(args string) (commands.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(commands.FindUsage)
	}
	return commands.NewFind(keywords), nil
}
