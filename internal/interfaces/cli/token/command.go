// Package token issues development bearer tokens and identity service keys.
package token

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/GraziArcH/domain-sales/internal/infrastructure/auth"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/config"
	"github.com/GraziArcH/domain-sales/internal/shared/authorization"
	"github.com/GraziArcH/domain-sales/internal/shared/constants"
)

var (
	env        string
	configPath string
	userID     uint64
	role       string
	key        string
	cost       int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token signed with the configured JWT secret",
		RunE:  runToken,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().Uint64Var(&userID, "user", 0, "Acting user id placed in the sub claim (required)")
	cmd.Flags().StringVar(&role, "role", string(authorization.RoleAdmin), "Role: admin, billing or service")
	_ = cmd.MarkFlagRequired("user")

	cmd.AddCommand(newServiceKeyCommand())
	return cmd
}

func runToken(cmd *cobra.Command, args []string) error {
	r, ok := authorization.ParseUserRole(role)
	if !ok {
		return fmt.Errorf("unknown role %q, expected one of %v", role, authorization.AllRoles)
	}
	if userID == 0 {
		return fmt.Errorf("--user must be a positive id")
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Auth.JWT.Secret == "" {
		return fmt.Errorf("auth.jwt.secret is not configured")
	}

	jwtCfg := cfg.Auth.JWT
	token, expiresAt, err := auth.NewJWTService(jwtCfg.Secret, jwtCfg.AccessExpMinutes, jwtCfg.Issuer).Generate(userID, r)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.Format("2006-01-02 15:04:05 MST"))
	return nil
}

func newServiceKeyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service-key",
		Short: "Manage the key the identity system presents in X-Service-Key",
	}

	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new service key and its bcrypt hash",
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := auth.GenerateServiceKey()
			if err != nil {
				return err
			}
			hash, err := auth.NewServiceKeyHasher(cost).Hash(k)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "key:  %s\nhash: %s\n", k, hash)
			return nil
		},
	}

	hash := &cobra.Command{
		Use:   "hash",
		Short: "Hash an existing service key for auth.service_key_hash",
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key
			if k == "" {
				var err error
				if k, err = readKey(cmd.ErrOrStderr()); err != nil {
					return err
				}
			}
			h, err := auth.NewServiceKeyHasher(cost).Hash(k)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}
	hash.Flags().StringVar(&key, "key", "", "Key to hash (prompted when omitted)")

	cmd.PersistentFlags().IntVar(&cost, "cost", 0, "bcrypt cost (default: bcrypt default)")
	cmd.AddCommand(generate, hash)
	return cmd
}

// readKey prompts without echo on a terminal and reads one line otherwise.
func readKey(prompt io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(prompt, "Service key: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read key: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read key: %w", err)
	}
	k := strings.TrimSpace(line)
	if k == "" {
		return "", fmt.Errorf("empty key")
	}
	return k, nil
}
