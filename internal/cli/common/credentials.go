package common

import (
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"gitcmd.dev/gitcmd/internal/git"
)

// CredentialFlags holds the credential flags of network commands
type CredentialFlags struct {
	Username      string
	Password      string
	PasswordStdin bool
}

// AddCredentialFlags registers --username/-u, --password/-p and --password-stdin on cmd
func AddCredentialFlags(cmd *cobra.Command, flags *CredentialFlags) {
	cmd.Flags().StringVarP(&flags.Username, "username", "u", "", "Username to authenticate with")
	cmd.Flags().StringVarP(&flags.Password, "password", "p", "", "Password to authenticate with (prompted for on a terminal when only --username is given)")
	cmd.Flags().BoolVar(&flags.PasswordStdin, "password-stdin", false, "Read the password from standard input")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")
}

// ReadStdin fills in the password from r when --password-stdin was given
func (f *CredentialFlags) ReadStdin(r io.Reader) error {
	if !f.PasswordStdin {
		return nil
	}
	password, err := ReadPassword(r)
	if err != nil {
		return err
	}
	if password == "" {
		return errors.New("no password on standard input")
	}
	f.Password = password
	return nil
}

// Prompter asks the user for the missing half of a credential pair
type Prompter interface {
	Password(message string) (string, error)
	Username(message string) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Password(message string) (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Password{Message: message}, &answer); err != nil {
		return "", fmt.Errorf("canceled")
	}
	return answer, nil
}

func (surveyPrompter) Username(message string) (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{Message: message}, &answer); err != nil {
		return "", fmt.Errorf("canceled")
	}
	return answer, nil
}

// TerminalPrompter prompts on the terminal, or returns nil when there is none
func TerminalPrompter() Prompter {
	if !IsTTY() {
		return nil
	}
	return surveyPrompter{}
}

// Credentials completes flags into a credential pair. When exactly one half
// is set and prompter is non-nil the other half is asked for. Without a
// prompter the pair is returned as given and the client rejects it.
func (f CredentialFlags) Credentials(prompter Prompter, remote string) (git.Credentials, error) {
	creds := git.Credentials{Username: f.Username, Password: f.Password}
	if prompter == nil || creds.Validate() == nil {
		return creds, nil
	}

	var err error
	if creds.Password == "" {
		creds.Password, err = prompter.Password(fmt.Sprintf("Password for %s at %s:", creds.Username, remote))
	} else {
		creds.Username, err = prompter.Username(fmt.Sprintf("Username for %s:", remote))
	}
	if err != nil {
		return git.Credentials{}, err
	}
	return creds, nil
}
