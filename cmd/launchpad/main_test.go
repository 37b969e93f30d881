package main

import "testing"

func TestValidateSecretKey(t *testing.T) {
	if err := validateSecretKey(""); err == nil {
		t.Fatal("expected error when SECRET_KEY is empty")
	}
	if err := validateSecretKey("change_me_in_production"); err == nil {
		t.Fatal("expected error when SECRET_KEY uses the insecure placeholder")
	}
	if err := validateSecretKey("too-short-secret"); err == nil {
		t.Fatal("expected error when SECRET_KEY is too short")
	}
	if err := validateSecretKey("0123456789abcdef0123456789abcdef"); err != nil {
		t.Fatalf("expected valid secret, got error: %v", err)
	}
}

func TestOAuthProvidersSkipsPartialConfig(t *testing.T) {
	config := serviceConfig{
		OAuthGoogleClientID: "client-id-only",
	}
	if providers := oauthProviders(config); len(providers) != 0 {
		t.Fatalf("expected partially configured provider to be skipped, got %d", len(providers))
	}

	config.OAuthGoogleClientSecret = "secret"
	config.OAuthGoogleRedirectURL = "https://launchpad.example/api/auth/oauth/google/callback"
	providers := oauthProviders(config)
	if _, ok := providers["google"]; !ok {
		t.Fatal("expected google provider to be registered")
	}
}
