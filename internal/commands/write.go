package commands

import (
	"fmt"

	people "github.com/peteraglen/people-client-go"
)

type AddCommand struct {
	*Meta

	person people.NewPerson
}

func (c *AddCommand) Synopsis() string {
	return "Create a person"
}

func (c *AddCommand) Help() string {
	return `Usage: peoplectl add -first-name NAME -last-name NAME -email EMAIL -phone PHONE -ip ADDR`
}

func (c *AddCommand) Run(args []string) int {
	f := c.flagSet("add")
	f.StringVar(&c.person.FirstName, "first-name", "", "First name.")
	f.StringVar(&c.person.LastName, "last-name", "", "Last name.")
	f.StringVar(&c.person.Email, "email", "", "Email address.")
	f.StringVar(&c.person.Phone, "phone", "", "Phone number.")
	f.StringVar(&c.person.IPAddress, "ip", "", "IP address.")
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	p, err := c.Client.AddPerson(c.requestContext(), c.person)
	if err != nil {
		return c.fail("add", err)
	}

	c.Log.Infow("created person", "id", p.ID)

	return c.output(p)
}

type DeleteCommand struct {
	*Meta
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a person by id"
}

func (c *DeleteCommand) Help() string {
	return `Usage: peoplectl delete <id>`
}

func (c *DeleteCommand) Run(args []string) int {
	if len(args) != 1 {
		c.UI.Error("delete takes exactly one argument: the person id")
		return 1
	}

	p, err := c.Client.DeleteByID(c.requestContext(), people.ID(args[0]))
	if err != nil {
		return c.fail("delete", err)
	}

	c.Log.Infow("deleted person", "id", args[0])

	return c.output(p)
}

type DeleteByNameCommand struct {
	*Meta
}

func (c *DeleteByNameCommand) Synopsis() string {
	return "Delete every person with the given first name"
}

func (c *DeleteByNameCommand) Help() string {
	return `Usage: peoplectl delete-by-name <first_name>

  Deletes all matching records one by one and prints them. Stops at the
  first delete the server refuses.`
}

func (c *DeleteByNameCommand) Run(args []string) int {
	if len(args) != 1 {
		c.UI.Error("delete-by-name takes exactly one argument: the first name")
		return 1
	}

	deleted, count, err := c.Client.DeleteByName(c.requestContext(), args[0])
	if err != nil {
		c.Log.Warnw("partial delete", "deleted", count)
		return c.fail("delete-by-name", err)
	}

	c.Log.Infow("deleted people", "first_name", args[0], "count", count)

	return c.output(deleted)
}

type ImportCommand struct {
	*Meta
}

func (c *ImportCommand) Synopsis() string {
	return "Create people from a JSON file"
}

func (c *ImportCommand) Help() string {
	return `Usage: peoplectl import <path>

  The file must contain a JSON array of person objects. Import stops at the
  first record the server rejects.`
}

func (c *ImportCommand) Run(args []string) int {
	if len(args) != 1 {
		c.UI.Error("import takes exactly one argument: the file path")
		return 1
	}

	created, err := c.Client.AddFromFile(c.requestContext(), args[0])
	if err != nil {
		c.Log.Warnw("partial import", "created", len(created))
		return c.fail("import", err)
	}

	c.Log.Infow("imported people", "path", args[0], "count", len(created))

	return c.output(created)
}
