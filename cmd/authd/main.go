package main

import (
	"crypto/rand"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const tokenTTL = 24 * time.Hour

type server struct {
	secret []byte
}

func main() {
	secret := []byte(os.Getenv("AUTHD_SECRET"))
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			log.Fatal(err)
		}
		log.Println("AUTHD_SECRET not set; tokens signed with a random per-process secret")
	}
	addr := os.Getenv("AUTHD_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	s := &server{secret: secret}

	r := mux.NewRouter()
	r.HandleFunc("/v1/auth/anonymous", s.anonymous).Methods(http.MethodPost)

	log.Println("authd listening on", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}

// anonymous mints a fresh user id and a signed bearer token. No request
// body; every call is a new anonymous user.
func (s *server) anonymous(w http.ResponseWriter, r *http.Request) {
	userID := uuid.NewString()
	now := time.Now().UTC()
	exp := now.Add(tokenTTL)

	claims := jwt.RegisteredClaims{
		Issuer:    "spiral-authd",
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"user_id":      userID,
		"access_token": token,
		"expires_at":   exp,
	})
	log.Println("issued anonymous session for", userID)
}
