package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session token",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		phone, _ := cmd.Flags().GetString("phone")
		password, _ := cmd.Flags().GetString("password")

		reader := bufio.NewReader(os.Stdin)
		if phone == "" {
			fmt.Print("Phone: ")
			line, _ := reader.ReadString('\n')
			phone = strings.TrimSpace(line)
		}
		if password == "" {
			fmt.Print("Password: ")
			line, _ := reader.ReadString('\n')
			password = strings.TrimSpace(line)
		}

		op := a.log.StartOp(context.Background(), "login", "phone", phone)
		res, err := a.client.Auth().Login(context.Background(), api.LoginRequest{
			Phone:    phone,
			Password: password,
		})
		if err != nil {
			op.Fail(err, "login failed")
			fail(err)
		}
		op.Complete("login succeeded")

		if res.User != nil {
			fmt.Printf("Signed in as %s (%s)\n", res.User.RealName, res.User.Phone)
		} else {
			fmt.Println("Signed in")
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().String("phone", "", "account phone number")
	loginCmd.Flags().String("password", "", "account password (prompted when omitted)")
}
