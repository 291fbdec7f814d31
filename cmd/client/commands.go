package main

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-cadence-keys/models"
)

// annotationNoApp marks commands that run without config, keyring or
// storage.
const annotationNoApp = "no-app"

var (
	errClearNotConfirmed = errors.New("refusing to delete the key without --yes")
	errKeyOnCommandLine  = errors.New("refusing to read the key from the command line; pipe it to stdin or pass --insecure-arg")
)

func newVersionCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Annotations: map[string]string{annotationNoApp: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildInfo.String())
		},
	}
}

func newStatusCmd(getApp func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the device key and offer linking on a new device",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := getApp()
			ctx := cmd.Context()

			status, err := a.services.DeviceLink.Status(ctx)
			if err != nil {
				return err
			}
			printStatus(cmd, status)

			userID, err := a.userID()
			if err != nil {
				return err
			}

			a.services.DeviceLink.BeginCycle()
			_, err = a.services.DeviceLink.CheckAndPrompt(ctx, userID, newTerminalPrompter(cmd.OutOrStdout()))
			return err
		},
	}
}

func printStatus(cmd *cobra.Command, status models.KeyStatus) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Device ID:\t%s\n", status.DeviceID)
	if !status.HasKey {
		fmt.Fprintf(w, "Key:\tnone\n")
	} else {
		fmt.Fprintf(w, "Key:\tpresent (%s)\n", status.Source)
		fmt.Fprintf(w, "Fingerprint:\t%s\n", status.Fingerprint)
	}
	_ = w.Flush()
}

func newLinkCmd(getApp func() *app) *cobra.Command {
	link := &cobra.Command{
		Use:   "link",
		Short: "Move the encryption key between devices",
	}

	export := &cobra.Command{
		Use:   "export",
		Short: "Print the key to enter on another device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exported, err := getApp().services.DeviceLink.ExportKey(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Anyone with this key can read your encrypted data.")
			fmt.Fprintf(cmd.OutOrStdout(), "Key:         %s\n", exported.Key)
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", exported.Fingerprint)
			return nil
		},
	}

	var keyOnCommandLine bool
	importCmd := &cobra.Command{
		Use:   "import [-]",
		Short: "Store a key exported from another device",
		Long: "Store a key exported from another device. The key is read from standard input " +
			"(without echo on a terminal) so it never appears in shell history or the process list.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidate, err := importCandidate(cmd, args, keyOnCommandLine)
			if err != nil {
				return err
			}

			fingerprint, err := getApp().services.DeviceLink.ImportKey(cmd.Context(), candidate)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Key imported. Fingerprint: %s\n", fingerprint)
			fmt.Fprintln(cmd.OutOrStdout(), "Compare it with the fingerprint shown on the other device.")
			return nil
		},
	}
	importCmd.Flags().BoolVar(&keyOnCommandLine, "insecure-arg", false,
		"accept the key as an argument (exposed to shell history and other local users)")

	detect := &cobra.Command{
		Use:   "detect",
		Short: "Report whether this looks like a new device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := getApp()
			userID, err := a.userID()
			if err != nil {
				return err
			}
			detection, err := a.services.DeviceLink.DetectNewDevice(cmd.Context(), userID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "New device: %t (%s)\n", detection.NewDevice, detection.Reason)
			return nil
		},
	}

	dismiss := &cobra.Command{
		Use:   "dismiss",
		Short: "Stop offering to link this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := getApp().services.DeviceLink.Dismiss(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Link prompt dismissed.")
			return nil
		},
	}

	link.AddCommand(export, importCmd, detect, dismiss)
	return link
}

func newKeyCmd(getApp func() *app) *cobra.Command {
	key := &cobra.Command{
		Use:   "key",
		Short: "Manage the device key",
	}

	var confirmed bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the key from this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return errClearNotConfirmed
			}
			if err := getApp().services.DeviceLink.ClearKey(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Key removed from this device.")
			return nil
		},
	}
	clearCmd.Flags().BoolVar(&confirmed, "yes", false, "confirm deleting the key")

	rotate := &cobra.Command{
		Use:   "rotate",
		Short: "Replace the key and re-encrypt all records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := getApp()
			userID, err := a.userID()
			if err != nil {
				return err
			}
			result, err := a.services.KeyRotator.Rotate(cmd.Context(), userID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rotated %s -> %s (%d activities, %d notes)\n",
				result.OldFingerprint, result.NewFingerprint, result.Activities, result.Notes)
			fmt.Fprintln(cmd.OutOrStdout(), "Other devices must import the new key.")
			return nil
		},
	}

	key.AddCommand(clearCmd, rotate)
	return key
}

func newMigrateCmd(getApp func() *app) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Register the single-device key with the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := getApp().services.LegacyMigrator.Migrate(cmd.Context(), email); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Legacy key migration finished.")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email the legacy key was created under")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newActivitiesCmd(getApp func() *app) *cobra.Command {
	activities := &cobra.Command{
		Use:   "activities",
		Short: "Read activities",
	}

	var cached bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List activities with names decrypted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := getApp()
			userID, err := a.userID()
			if err != nil {
				return err
			}

			var items []models.Activity
			if cached {
				items, err = a.services.ActivityService.ListCached(cmd.Context(), userID)
			} else {
				items, err = a.services.ActivityService.List(cmd.Context(), userID)
			}
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tNAME")
			for _, activity := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\n", activity.ID, activity.Status, deref(activity.Name))
			}
			return w.Flush()
		},
	}
	list.Flags().BoolVar(&cached, "cached", false, "read from the local cache only")

	activities.AddCommand(list)
	return activities
}

func newNotesCmd(getApp func() *app) *cobra.Command {
	notes := &cobra.Command{
		Use:   "notes",
		Short: "Read notes",
	}

	var cached bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List notes with messages decrypted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := getApp()
			userID, err := a.userID()
			if err != nil {
				return err
			}

			var items []models.Note
			if cached {
				items, err = a.services.NoteService.ListCached(cmd.Context(), userID)
			} else {
				items, err = a.services.NoteService.List(cmd.Context(), userID)
			}
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTIMESLICE\tMESSAGE")
			for _, note := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\n", note.ID, deref(note.TimesliceID), deref(note.Message))
			}
			return w.Flush()
		},
	}
	list.Flags().BoolVar(&cached, "cached", false, "read from the local cache only")

	notes.AddCommand(list)
	return notes
}

func newCacheCmd(getApp func() *app) *cobra.Command {
	cache := &cobra.Command{
		Use:   "cache",
		Short: "Maintain the local record cache",
	}

	refresh := &cobra.Command{
		Use:   "refresh",
		Short: "Pull records from the backend once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := getApp()
			userID, err := a.userID()
			if err != nil {
				return err
			}
			if err = a.services.CacheRefresher.Refresh(cmd.Context(), userID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cache refreshed.")
			return nil
		},
	}

	watch := &cobra.Command{
		Use:   "watch",
		Short: "Refresh the cache periodically until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := getApp()
			userID, err := a.userID()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a.services.CacheRefreshJob.Start(ctx, userID, a.cfg.Workers.SyncInterval)
			<-ctx.Done()
			a.services.CacheRefreshJob.Stop()
			return nil
		},
	}

	cache.AddCommand(refresh, watch)
	return cache
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
