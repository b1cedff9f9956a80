package commands

import (
	"fmt"
	"strings"

	people "github.com/peteraglen/people-client-go"
)

type ListCommand struct {
	*Meta

	flagLimit int
}

func (c *ListCommand) Synopsis() string {
	return "List all people"
}

func (c *ListCommand) Help() string {
	return `Usage: peoplectl list [-limit N]

  Prints the whole collection. With -limit the collection is fetched
  N records per request.`
}

func (c *ListCommand) Run(args []string) int {
	f := c.flagSet("list")
	f.IntVar(&c.flagLimit, "limit", 0, "Page size; 0 fetches everything in one request.")
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	var (
		result []people.Person
		err    error
	)
	if c.flagLimit == 0 {
		result, err = c.Client.GetAll(c.requestContext())
	} else {
		result, err = c.Client.GetAllPaginated(c.requestContext(), c.flagLimit)
	}
	if err != nil {
		return c.fail("list", err)
	}

	c.Log.Infow("listed people", "count", len(result), "limit", c.flagLimit)

	return c.output(result)
}

type GetCommand struct {
	*Meta
}

func (c *GetCommand) Synopsis() string {
	return "Show one person by id"
}

func (c *GetCommand) Help() string {
	return `Usage: peoplectl get <id>`
}

func (c *GetCommand) Run(args []string) int {
	if len(args) != 1 {
		c.UI.Error("get takes exactly one argument: the person id")
		return 1
	}

	p, err := c.Client.PersonByID(c.requestContext(), people.ID(args[0]))
	if err != nil {
		return c.fail("get", err)
	}

	return c.output(p)
}

type QueryCommand struct {
	*Meta
}

func (c *QueryCommand) Synopsis() string {
	return "Find people by exact field values"
}

func (c *QueryCommand) Help() string {
	return `Usage: peoplectl query field=value [field=value...]

  Recognized fields: first_name, last_name, email, phone, ip_address.`
}

func (c *QueryCommand) Run(args []string) int {
	if len(args) == 0 {
		c.UI.Error("query needs at least one field=value argument")
		return 1
	}

	criteria := people.QueryCriteria{}
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			c.UI.Error(fmt.Sprintf("invalid criterion %q, expected field=value", arg))
			return 1
		}
		criteria[k] = v
	}

	result, err := c.Client.Query(c.requestContext(), criteria)
	if err != nil {
		return c.fail("query", err)
	}

	return c.output(result)
}

type ByIPCommand struct {
	*Meta
}

func (c *ByIPCommand) Synopsis() string {
	return "Find people whose IP address starts with a prefix"
}

func (c *ByIPCommand) Help() string {
	return `Usage: peoplectl by-ip <prefix>`
}

func (c *ByIPCommand) Run(args []string) int {
	if len(args) != 1 {
		c.UI.Error("by-ip takes exactly one argument: the address prefix")
		return 1
	}

	result, err := c.Client.PeopleByPartialIP(c.requestContext(), args[0])
	if err != nil {
		return c.fail("by-ip", err)
	}

	return c.output(result)
}
