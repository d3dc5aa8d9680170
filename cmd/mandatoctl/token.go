package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Mandatos-api/internal/domain/entity"
	"github.com/jhoicas/Mandatos-api/pkg/config"
	"github.com/jhoicas/Mandatos-api/pkg/jwt"
)

func tokenCmd() *cobra.Command {
	var userID, name, role string
	var minutes int
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un JWT de desarrollo firmado con JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			if role != entity.RoleAdmin && role != entity.RoleAsesor {
				return fmt.Errorf("rol inválido %q (admin|asesor)", role)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if userID == "" {
				userID = uuid.NewString()
			}
			if minutes <= 0 {
				minutes = cfg.JWT.Expiration
			}
			tok, err := jwt.Generate(cfg.JWT.Secret, jwt.Identity{UserID: userID, Name: name, Role: role}, cfg.JWT.Issuer, minutes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "ID del usuario (default: uuid nuevo)")
	cmd.Flags().StringVar(&name, "name", "", "nombre del usuario")
	cmd.Flags().StringVar(&role, "role", entity.RoleAsesor, "admin | asesor")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "vigencia en minutos (default JWT_EXPIRATION_MINUTES)")
	return cmd
}
