package main

import (
	"context"
	"errors"
	"strings"

	"github.com/LukaGiorgadze/gonull"
	"github.com/abiosoft/ishell/v2"
	"github.com/edup2p/primitives/store"
	"github.com/edup2p/primitives/types/key"
)

func printRecord(c *ishell.Context, k key.Key, e store.Entry) {
	if e.Label.Valid {
		c.Printf("%s %s %q\n", k, e.Type, e.Label.Val)
	} else {
		c.Printf("%s %s\n", k, e.Type)
	}
}

// Registry commands
func regCmd() *ishell.Cmd {
	c := &ishell.Cmd{
		Name: "reg",
		Help: "key registry",
		Func: func(c *ishell.Context) {
			c.Println(c.Cmd.HelpText())
		},
	}

	c.AddCmd(&ishell.Cmd{
		Name: "add",
		Help: "register a key: reg add <key> <type> [label]",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(errors.New("usage: reg add <key> <type> [label]"))
				return
			}

			k, err := parseKeyArg(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}

			kt, err := key.ParseKeyType(c.Args[1])
			if err != nil {
				c.Err(err)
				return
			}

			e := store.Entry{Type: kt}
			if len(c.Args) > 2 {
				e.Label = gonull.NewNullable(strings.Join(c.Args[2:], " "))
			}

			if err := reg.Put(k, e); err != nil {
				c.Err(err)
			}
		},
	})

	c.AddCmd(&ishell.Cmd{
		Name: "get",
		Help: "show a registered key",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(errors.New("usage: reg get <key>"))
				return
			}

			k, err := parseKeyArg(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}

			e, err := reg.Get(k)
			if err != nil {
				c.Err(err)
				return
			}

			printRecord(c, k, e)
		},
	})

	c.AddCmd(&ishell.Cmd{
		Name: "del",
		Help: "unregister a key",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(errors.New("usage: reg del <key>"))
				return
			}

			k, err := parseKeyArg(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}

			if err := reg.Delete(k); err != nil {
				c.Err(err)
			}
		},
	})

	c.AddCmd(&ishell.Cmd{
		Name: "ls",
		Help: "list registered keys in order",
		Func: func(c *ishell.Context) {
			err := reg.Iterate(context.Background(), func(r store.Record) bool {
				printRecord(c, r.Key, r.Entry)
				return true
			})
			if err != nil {
				c.Err(err)
			}
		},
	})

	return c
}
