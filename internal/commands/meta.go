package commands

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/mitchellh/cli"
	"go.uber.org/zap"

	people "github.com/peteraglen/people-client-go"
)

// API is the subset of *people.Client the commands use.
type API interface {
	GetAll(ctx context.Context) ([]people.Person, error)
	GetAllPaginated(ctx context.Context, limit int) ([]people.Person, error)
	PersonByID(ctx context.Context, id people.ID) (people.Person, error)
	Query(ctx context.Context, criteria people.QueryCriteria) ([]people.Person, error)
	PeopleByPartialIP(ctx context.Context, prefix string) ([]people.Person, error)
	AddPerson(ctx context.Context, p people.NewPerson) (people.Person, error)
	DeleteByID(ctx context.Context, id people.ID) (people.Person, error)
	DeleteByName(ctx context.Context, firstName string) ([]people.Person, int, error)
	AddFromFile(ctx context.Context, path string) ([]people.Person, error)
}

var _ API = (*people.Client)(nil)

// Meta carries what every command needs.
type Meta struct {
	Ctx    context.Context
	Client API
	Log    *zap.SugaredLogger
	UI     cli.Ui
}

func (m *Meta) requestContext() context.Context {
	if m.Ctx == nil {
		return context.Background()
	}
	return m.Ctx
}

func (m *Meta) flagSet(name string) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	return f
}

// output prints v as indented JSON.
func (m *Meta) output(v any) int {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		m.UI.Error(fmt.Sprintf("error encoding output: %v", err))
		return 1
	}
	m.UI.Output(string(b))
	return 0
}

func (m *Meta) fail(op string, err error) int {
	m.Log.Errorw("command failed", "command", op, "error", err)
	m.UI.Error(fmt.Sprintf("%s: %v", op, err))
	return 1
}

// Commands returns the peoplectl command table.
func Commands(m *Meta) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"list": func() (cli.Command, error) {
			return &ListCommand{Meta: m}, nil
		},
		"get": func() (cli.Command, error) {
			return &GetCommand{Meta: m}, nil
		},
		"query": func() (cli.Command, error) {
			return &QueryCommand{Meta: m}, nil
		},
		"by-ip": func() (cli.Command, error) {
			return &ByIPCommand{Meta: m}, nil
		},
		"add": func() (cli.Command, error) {
			return &AddCommand{Meta: m}, nil
		},
		"delete": func() (cli.Command, error) {
			return &DeleteCommand{Meta: m}, nil
		},
		"delete-by-name": func() (cli.Command, error) {
			return &DeleteByNameCommand{Meta: m}, nil
		},
		"import": func() (cli.Command, error) {
			return &ImportCommand{Meta: m}, nil
		},
	}
}
