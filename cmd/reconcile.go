// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Re-run provisioning for a company or workspace",
}

var reconcileCompanyCmd = &cobra.Command{
	Use:   "company [id]",
	Short: "Reconcile a company with the provisioning system",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := newAPIClient().do(http.MethodPost, fmt.Sprintf("/api/v0/companies/%s/reconcile", args[0]), nil)
		if err != nil {
			return fmt.Errorf("failed to reconcile company: %w", err)
		}

		fmt.Printf("Company reconciled: %s\n", string(data))
		return nil
	},
}

var reconcileWorkspaceCmd = &cobra.Command{
	Use:   "workspace [id]",
	Short: "Reconcile a workspace with the provisioning system",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := newAPIClient().do(http.MethodPost, fmt.Sprintf("/api/v0/workspaces/%s/reconcile", args[0]), nil)
		if err != nil {
			return fmt.Errorf("failed to reconcile workspace: %w", err)
		}

		fmt.Printf("Workspace reconciled: %s\n", string(data))
		return nil
	},
}

func init() {
	reconcileCmd.AddCommand(reconcileCompanyCmd)
	reconcileCmd.AddCommand(reconcileWorkspaceCmd)
	rootCmd.AddCommand(reconcileCmd)
}
