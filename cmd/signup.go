package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tellerbank/teller/internal/app"
	"github.com/tellerbank/teller/internal/service"
	"github.com/tellerbank/teller/internal/ui/prompts"
	"github.com/tellerbank/teller/internal/validation"
)

func NewSignupCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "signup",
		Short: "Create a new customer profile",
		Long: `Create a new customer profile.

Every new customer gets the standard account set: a checking account, a
savings account and a credit card account, all starting empty.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			validator := validation.NewCustomerValidator(application.Store)

			answers, err := prompts.Signup(validator.ValidateNewUsername)
			if err != nil {
				return err
			}

			ind, accounts, err := application.Service.Individual.Signup(service.SignupInput{
				Username:  answers.Username,
				Password:  answers.Password,
				FirstName: answers.FirstName,
				LastName:  answers.LastName,
				Age:       answers.Age,
				Address:   answers.Address,
			})
			if err != nil {
				return err
			}

			pterm.Success.Printf("Welcome, %s! Your profile is ready.\n", ind.Username)
			for _, acc := range accounts {
				pterm.Info.Printf("Opened %s account %s\n", acc.Type, acc.ID)
			}
			pterm.Println("Please run 'teller login' with your new credentials.")
			return nil
		},
	}
}
