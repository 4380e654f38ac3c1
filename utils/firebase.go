// utils/firebase.go
package utils

import (
	"context"

	"shiftflow/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

var FCMClient *messaging.Client

// FirebaseInit initializes the Firebase App and Messaging client. Push
// notifications are optional: when no credentials file is configured the
// client stays nil and callers skip sending.
func FirebaseInit() {
	credFile := config.AppConfig.FirebaseCredentialsFile
	if credFile == "" {
		GetLogger().Info("Firebase credentials not configured; push notifications disabled")
		return
	}

	ctx := context.Background()
	opt := option.WithCredentialsFile(credFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		GetLogger().Error("Failed to initialize Firebase app; push notifications disabled", zap.Error(err))
		return
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		GetLogger().Error("Failed to create Firebase messaging client; push notifications disabled", zap.Error(err))
		return
	}

	FCMClient = client
}
