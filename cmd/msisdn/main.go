package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/nulleins/msisdn"
	"github.com/nulleins/msisdn/schemedef"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "parse":
		parseCmd(os.Args[2:])
	case "schemes":
		schemesCmd(os.Args[2:])
	case "resolve":
		resolveCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "msisdn CLI\n\nUsage:\n  msisdn parse -defs schemes.yaml [-t template] NUMBER...\n  msisdn schemes -defs schemes.yaml\n  msisdn resolve -defs schemes.yaml VALUE...\n\nNotes:\n  - -defs accepts .yaml/.yml, .json or properties files; an absent file means no schemes.\n  - Templates may use the tokens $CC, $NDC and $SN.")
}

func parseCmd(args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	var defs string
	var template string
	fs.StringVar(&defs, "defs", "", "scheme definition file")
	fs.StringVar(&template, "t", "", "output template using $CC/$NDC/$SN")
	_ = fs.Parse(args)
	if defs == "" || fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}
	reg := loadRegistry(defs)
	for _, raw := range fs.Args() {
		n, err := reg.Parse(raw)
		if err != nil {
			fatalf("parse %q: %v", raw, err)
		}
		if template != "" {
			fmt.Println(n.Format(template))
			continue
		}
		fmt.Printf("%s\tscheme=%s cc=%d ndc=%d sn=%d\n",
			n, n.Scheme().Name(), n.CountryCode(), n.AreaCode(), n.SubscriberNumber())
	}
}

func schemesCmd(args []string) {
	fs := flag.NewFlagSet("schemes", flag.ExitOnError)
	var defs string
	fs.StringVar(&defs, "defs", "", "scheme definition file")
	_ = fs.Parse(args)
	if defs == "" {
		fs.Usage()
		os.Exit(2)
	}
	reg := loadRegistry(defs)
	for _, s := range reg.Schemes() {
		fmt.Printf("%#06x\t%s\n", s.Key(), s)
	}
}

func resolveCmd(args []string) {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	var defs string
	fs.StringVar(&defs, "defs", "", "scheme definition file")
	_ = fs.Parse(args)
	if defs == "" || fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}
	reg := loadRegistry(defs)
	for _, arg := range fs.Args() {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			fatalf("resolve %q: not an integer", arg)
		}
		n, err := reg.Resolve(msisdn.Deserialize(v))
		if err != nil {
			fatalf("resolve %d: %v", v, err)
		}
		fmt.Printf("%s\tscheme=%s\n", n, n.Scheme().Name())
	}
}

func loadRegistry(path string) *msisdn.Registry {
	reg := msisdn.NewRegistry()
	if err := schemedef.RegisterFile(reg, path); err != nil {
		fatalf("loading %s: %v", path, err)
	}
	return reg
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
