package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/taskhive/taskhive-api/internal/auth"
	"github.com/taskhive/taskhive-api/internal/domain"
)

// Dev helper: mints a JWT for manual API testing without going through
// the login endpoint.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	userID := flag.String("user", "", "User ID for the token")
	email := flag.String("email", "dev@example.com", "Email claim")
	role := flag.String("role", "user", "Role (super_admin, tenant_admin, user)")
	tenantID := flag.String("tenant", "", "Tenant ID (empty for super_admin)")
	expirationHours := flag.Int("exp", 24, "Token expiration in hours")
	flag.Parse()

	if *userID == "" {
		log.Fatal("User ID is required")
	}
	if !domain.IsValidRole(*role) {
		log.Fatalf("Invalid role: %s", *role)
	}
	if *tenantID == "" && domain.Role(*role) != domain.RoleSuperAdmin {
		log.Fatal("Tenant ID is required for tenant-bound roles")
	}

	user := &domain.User{
		ID:    *userID,
		Email: *email,
		Role:  domain.Role(*role),
	}
	if *tenantID != "" {
		user.TenantID = tenantID
	}

	secret := getEnvOrDefault("JWT_SECRET_KEY", "your-default-secret-key")
	tokens := auth.NewTokenService(secret, time.Duration(*expirationHours)*time.Hour)

	tokenString, err := tokens.Issue(user)
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}

	fmt.Printf("Generated JWT Token:\n%s\n", tokenString)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
