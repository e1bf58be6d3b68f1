// Command token issues an access token for local development and registers it
// so the revocation check accepts it.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/codingwithstephen/gp-surgery-mobile/config"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/infrastructure/cache"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/service"
	"github.com/codingwithstephen/gp-surgery-mobile/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	email := pflag.String("email", "admin@example.com", "email carried by the token")
	role := pflag.String("role", entity.RoleAdmin, "admin, doctor, receptionist or patient")
	userID := pflag.String("user-id", "", "user id (random when empty)")
	pflag.Parse()

	logrus.SetFormatter(&logrus.JSONFormatter{})

	roleID, ok := roleIDs[*role]
	if !ok {
		logrus.Fatalf("Unknown role %q", *role)
	}

	id := uuid.New()
	if *userID != "" {
		parsed, err := uuid.Parse(*userID)
		if err != nil {
			logrus.Fatalf("Invalid user id: %v", err)
		}
		id = parsed
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT)
	token, tokenID, err := jwtService.GenerateAccessToken(id, *email, roleID)
	if err != nil {
		logrus.Fatalf("Failed to generate access token: %v", err)
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := service.NewTokenRegistry(redisClient).Register(ctx, id, tokenID, jwtService.GetAccessExpiry()); err != nil {
		logrus.Fatalf("Failed to register access token: %v", err)
	}

	fmt.Fprintln(os.Stdout, token)
}

var roleIDs = map[string]int{
	entity.RoleAdmin:        entity.RoleIDAdmin,
	entity.RoleDoctor:       entity.RoleIDDoctor,
	entity.RoleReceptionist: entity.RoleIDReceptionist,
	entity.RolePatient:      entity.RoleIDPatient,
}
