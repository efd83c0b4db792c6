package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/portfolio-site/internal/content"
	"github.com/ignatzorin/portfolio-site/internal/validation"
)

func imageURLCmd(opts *options) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "image-url <ref>",
		Short: "Преобразовать ссылку на изображение Sanity в URL CDN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u := content.NewImageURLBuilder(opts.projectID, opts.dataset).FromRef(args[0], width)
			if u == "" {
				return fmt.Errorf("contentctl: не удалось разобрать ссылку %q (нужен --project)", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), u)
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, "ширина изображения в пикселях")
	return cmd
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Прочитать пароль из stdin и вывести bcrypt-хэш для ADMIN_PASSWORD_HASH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("contentctl: пароль не передан: %w", err)
			}
			password := strings.TrimRight(line, "\r\n")
			if err := validation.ValidatePassword(password); err != nil {
				return err
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(hash))
			return nil
		},
	}
}
