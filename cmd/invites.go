// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var invitesCmd = &cobra.Command{
	Use:   "invites",
	Short: "Manage pending invitations",
}

var listInvitesCmd = &cobra.Command{
	Use:   "list [company-id]",
	Short: "List pending invitations for a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := newAPIClient().do(http.MethodGet, fmt.Sprintf("/api/v0/companies/%s/invites", args[0]), nil)
		if err != nil {
			return fmt.Errorf("failed to list invites: %w", err)
		}

		var invites []struct {
			ID        string    `json:"id"`
			Email     string    `json:"email"`
			Scope     string    `json:"scope"`
			ExpiresAt time.Time `json:"expires_at"`
		}
		if err := json.Unmarshal(data, &invites); err != nil {
			return fmt.Errorf("failed to parse invites: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tSCOPE\tEXPIRES")
		for _, invite := range invites {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", invite.ID, invite.Email, invite.Scope, invite.ExpiresAt.Format(time.RFC3339))
		}
		return w.Flush()
	},
}

var revokeInviteCmd = &cobra.Command{
	Use:   "revoke [company-id] [invite-id]",
	Short: "Revoke a pending invitation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := newAPIClient().do(http.MethodDelete, fmt.Sprintf("/api/v0/companies/%s/invites/%s", args[0], args[1]), nil)
		if err != nil {
			return fmt.Errorf("failed to revoke invite: %w", err)
		}

		fmt.Println("Invite revoked")
		return nil
	},
}

func init() {
	invitesCmd.AddCommand(listInvitesCmd)
	invitesCmd.AddCommand(revokeInviteCmd)
	rootCmd.AddCommand(invitesCmd)
}
