package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/abiosoft/ishell/v2"
	"github.com/edup2p/primitives/store"
	"github.com/edup2p/primitives/types"
	"github.com/edup2p/primitives/types/bin"
	"github.com/edup2p/primitives/types/key"
	"github.com/edup2p/primitives/types/keymap"
)

var (
	programLevel = new(slog.LevelVar) // Info by default

	dbPath   = flag.String("db", "", "registry directory, in-memory when empty")
	seedPath = flag.String("seed", "", "TOML file with keys to register on startup")

	reg *store.Store

	// keys marked during this session
	marks = keymap.New[string]()
)

func main() {
	flag.Parse()

	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: programLevel, AddSource: true})
	slog.SetDefault(slog.New(h))

	if err := run(); err != nil {
		slog.Error("keytool failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	var err error
	if reg, err = openRegistry(*dbPath, *seedPath); err != nil {
		return err
	}
	defer reg.Close()

	shell := ishell.New()

	shell.SetHomeHistoryPath(".keytool_history")

	shell.Println("Key Tool Interactive Shell")

	shell.AddCmd(&ishell.Cmd{
		Name: "trace",
		Help: "set log level to trace",
		Func: func(c *ishell.Context) {
			programLevel.Set(types.LevelTrace)
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "debug",
		Help: "set log level to debug",
		Func: func(c *ishell.Context) {
			programLevel.Set(slog.LevelDebug)
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "info",
		Help: "set log level to info",
		Func: func(c *ishell.Context) {
			programLevel.Set(slog.LevelInfo)
		},
	})

	shell.AddCmd(parseCmd())
	shell.AddCmd(cmpCmd())
	shell.AddCmd(encodeCmd())
	shell.AddCmd(typeCmd())
	shell.AddCmd(markCmd())
	shell.AddCmd(regCmd())

	shell.Run()
	return nil
}

// openRegistry opens the registry at dir, in memory when dir is empty, and
// seeds it from seed when given. The registry is closed again if seeding fails.
func openRegistry(dir, seed string) (*store.Store, error) {
	var (
		r   *store.Store
		err error
	)
	if dir == "" {
		r, err = store.OpenMemory()
	} else {
		r, err = store.Open(dir)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open registry: %w", err)
	}

	if seed != "" {
		n, err := loadSeed(seed, r)
		if err != nil {
			_ = r.Close()
			return nil, fmt.Errorf("could not load seed file %s: %w", seed, err)
		}
		slog.Info("seeded registry", "path", seed, "keys", n)
	}

	return r, nil
}

// keyArgHelp is appended to the help of every command taking a key.
//
// A raw 32-character key starting with "key:" cannot be entered, it is
// always read as the hex form.
const keyArgHelp = "keys are 'key:<64 hex>' or 8/32 raw characters (raw keys starting with 'key:' are read as hex)"

// parseKeyArg accepts either the "key:" text form, or raw text of 8 or 32 bytes.
func parseKeyArg(s string) (key.Key, error) {
	if strings.HasPrefix(s, "key:") {
		return key.ParseKey(s)
	}
	return key.FromString(s)
}

func describe(k key.Key) string {
	if k.IsTestWidth() {
		return fmt.Sprintf("%s (zero-padded past %d)", k, key.TestLen)
	}
	return k.String()
}

// encodeLines renders k, and t when given, in every encoding a key has.
func encodeLines(k key.Key, t *key.KeyType) ([]string, error) {
	b, err := k.MarshalBinary()
	if err != nil {
		return nil, err
	}
	text, err := k.MarshalText()
	if err != nil {
		return nil, err
	}
	bt, bv, err := k.MarshalBSONValue()
	if err != nil {
		return nil, err
	}

	lines := []string{
		"key bin:  " + hex.EncodeToString(b),
		"key text: " + string(text),
		fmt.Sprintf("key bson: %s %x", bt, bv),
	}

	if t == nil {
		return lines, nil
	}

	if b, err = t.MarshalBinary(); err != nil {
		return nil, err
	}
	if text, err = t.MarshalText(); err != nil {
		return nil, err
	}
	if bt, bv, err = t.MarshalBSONValue(); err != nil {
		return nil, err
	}

	return append(lines,
		"type bin:  "+hex.EncodeToString(b),
		"type text: "+string(text),
		fmt.Sprintf("type bson: %s %x", bt, bv),
	), nil
}

// dumpMarks renders the keys of m as a hex length-prefixed list.
func dumpMarks(m *keymap.Map[string]) (string, error) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	if err := bin.WriteKeys(w, m.Keys()); err != nil {
		return "", err
	}
	if err := w.Flush(); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf.Bytes()), nil
}

// loadMarks marks every key of a dumpMarks string in m. Existing notes are kept.
func loadMarks(m *keymap.Map[string], dump string) (int, error) {
	raw, err := hex.DecodeString(dump)
	if err != nil {
		return 0, err
	}

	keys, err := bin.ReadKeys(bufio.NewReader(bytes.NewReader(raw)))
	if err != nil {
		return 0, err
	}

	for _, k := range keys {
		if !m.Has(k) {
			m.Set(k, "")
		}
	}
	return len(keys), nil
}

func encodeCmd() *ishell.Cmd {
	return &ishell.Cmd{
		Name: "encode",
		Help: "show the binary, text and bson forms of a key, and optionally a key type; " + keyArgHelp,
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 || len(c.Args) > 2 {
				c.Err(errors.New("usage: encode <key> [type]"))
				return
			}

			k, err := parseKeyArg(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}

			var t *key.KeyType
			if len(c.Args) == 2 {
				kt, err := key.ParseKeyType(c.Args[1])
				if err != nil {
					c.Err(err)
					return
				}
				t = &kt
			}

			lines, err := encodeLines(k, t)
			if err != nil {
				c.Err(err)
				return
			}
			for _, l := range lines {
				c.Println(l)
			}
		},
	}
}

func parseCmd() *ishell.Cmd {
	return &ishell.Cmd{
		Name: "parse",
		Help: "parse a key; " + keyArgHelp,
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(errors.New("usage: parse <key>"))
				return
			}

			k, err := parseKeyArg(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}

			c.Println("key:", describe(k))
			c.Println("bin:", hex.EncodeToString(k[:]))
		},
	}
}

func cmpCmd() *ishell.Cmd {
	return &ishell.Cmd{
		Name: "cmp",
		Help: "compare two keys; " + keyArgHelp,
		Func: func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Err(errors.New("usage: cmp <a> <b>"))
				return
			}

			a, err := parseKeyArg(c.Args[0])
			if err != nil {
				c.Err(fmt.Errorf("a: %w", err))
				return
			}
			b, err := parseKeyArg(c.Args[1])
			if err != nil {
				c.Err(fmt.Errorf("b: %w", err))
				return
			}

			switch key.Compare(a, b) {
			case -1:
				c.Println("a < b")
			case 1:
				c.Println("a > b")
			default:
				c.Println("a == b")
			}
		},
	}
}

func typeCmd() *ishell.Cmd {
	return &ishell.Cmd{
		Name: "type",
		Help: "parse a key type (external, identity, multisig, relayer, custom:<n>)",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(errors.New("usage: type <name>"))
				return
			}

			kt, err := key.ParseKeyType(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}

			b, err := kt.MarshalBinary()
			if err != nil {
				c.Err(err)
				return
			}

			c.Println("type:", kt)
			c.Println("bin:", hex.EncodeToString(b))
		},
	}
}

// Mark commands
func markCmd() *ishell.Cmd {
	c := &ishell.Cmd{
		Name: "mark",
		Help: "mark a key for this session, optionally with a note; " + keyArgHelp,
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("usage: mark <key> [note]"))
				return
			}

			k, err := parseKeyArg(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}

			note := strings.Join(c.Args[1:], " ")
			if prev, replaced := marks.Set(k, note); replaced {
				slog.Debug("replaced mark", "key", k.Debug(), "prev", prev)
			}
		},
	}

	c.AddCmd(&ishell.Cmd{
		Name: "ls",
		Help: "list marked keys in order",
		Func: func(c *ishell.Context) {
			marks.Ascend(nil, func(k key.Key, note string) bool {
				c.Println(k, note)
				return true
			})
		},
	})

	c.AddCmd(&ishell.Cmd{
		Name: "dump",
		Help: "dump marked keys as a length-prefixed binary list (hex)",
		Func: func(c *ishell.Context) {
			dump, err := dumpMarks(marks)
			if err != nil {
				c.Err(err)
				return
			}

			c.Println(dump)
		},
	})

	c.AddCmd(&ishell.Cmd{
		Name: "load",
		Help: "load marks from a hex dump",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(errors.New("usage: mark load <hex>"))
				return
			}

			n, err := loadMarks(marks, c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}

			c.Println("loaded", n, "keys")
		},
	})

	return c
}
