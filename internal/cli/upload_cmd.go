package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/planhub/internal/cli/formatter"
	"github.com/alexanderramin/planhub/internal/upload"
	"github.com/spf13/cobra"
)

func newUploadCmd(app *App) *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "upload FILE...",
		Short: "Upload existing study plan files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := upload.NewSession()
			if _, err := sess.AddFiles(args...); err != nil {
				return err
			}
			for _, t := range tags {
				sess.AddTag(t)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatFileList(sess.Files(), -1))
			fmt.Fprintln(out, formatter.FormatTags(sess.Tags()))

			files, err := sess.BeginUpload()
			if err != nil {
				return err
			}
			stop := formatter.StartSpinner(cmd.ErrOrStderr(), "上傳中...")
			err = app.Uploads.Upload(context.Background(), files, sess.Tags())
			stop()
			sess.FinishUpload(err)
			if err != nil {
				return fmt.Errorf("upload: %w", err)
			}
			fmt.Fprintln(out, formatter.FormatUploadState(sess.State(), len(files), len(files)))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag for the upload (repeatable)")

	return cmd
}
