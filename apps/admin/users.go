package main

import (
	"fmt"
	"strings"

	"github.com/unidubna/portal/core"
	"github.com/unidubna/portal/core/user"
)

// addUser registers a user through the regular registration path so the
// email-pattern role rules still apply; -super then grants SUPER_ADMIN.
func (cli *commandLine) addUser(email, pwd string, super bool) error {
	usr, err := cli.usrSvc.Register(user.NewUser{Email: email, Password: pwd})
	if err != nil {
		return err
	}
	fmt.Printf("registered %s as %s\n", usr.Email, usr.BaseRole)

	if super {
		return cli.grant(usr.Email, []string{string(user.CapSuperAdmin)})
	}
	return nil
}

func (cli *commandLine) grant(email string, tags []string) error {
	perms := make([]user.Capability, 0, len(tags))
	for _, tag := range tags {
		c := user.Capability(core.CleanString(tag))
		if !user.IsKnownCapability(c) {
			return fmt.Errorf("unknown capability tag %q", tag)
		}
		perms = append(perms, c)
	}

	usr, err := cli.usrSvc.GrantPermissions(user.Grant{Email: email, Permissions: perms})
	if err != nil {
		return err
	}
	fmt.Printf("%s now holds: %s\n", usr.Email, joinTags(usr.Permissions))
	return nil
}

func (cli *commandLine) listUsers() error {
	users, err := cli.usrSvc.QueryAll()
	if err != nil {
		return err
	}
	for _, usr := range users {
		fmt.Printf("%s\t%s\t%s\n", usr.Email, usr.BaseRole, joinTags(usr.Permissions))
	}
	return nil
}

func joinTags(perms []user.Capability) string {
	if len(perms) == 0 {
		return "-"
	}
	tags := make([]string, len(perms))
	for i, p := range perms {
		tags[i] = string(p)
	}
	return strings.Join(tags, ",")
}
