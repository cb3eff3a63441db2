package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/unidubna/portal/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	usrSvc *user.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  adduser -email EMAIL [-super] - register a user (password prompted)")
	fmt.Println("  grant -email EMAIL -perms TAG[,TAG...] - replace a user's permission tags")
	fmt.Println("  listusers - print the user table")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ExitOnError)
	addUserEmail := addUserCmd.String("email", "", "The user's email. The password will be prompted next.")
	addUserSuper := addUserCmd.Bool("super", false, "Grant SUPER_ADMIN after registration.")

	grantCmd := flag.NewFlagSet("grant", flag.ExitOnError)
	grantEmail := grantCmd.String("email", "", "The user's email.")
	grantPerms := grantCmd.String("perms", "", "Comma-separated capability tags; replaces the stored set.")

	switch args[1] {
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserEmail == "" {
			addUserCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(*addUserEmail, string(pwd), *addUserSuper)
	case "grant":
		if err := grantCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *grantEmail == "" || *grantPerms == "" {
			grantCmd.Usage()
			return errHelp
		}
		return cli.grant(*grantEmail, strings.Split(*grantPerms, ","))
	case "listusers":
		return cli.listUsers()
	default:
		cli.printUsage()
		return errHelp
	}
}
