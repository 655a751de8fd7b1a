package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/RamiSparda/AppMovilApp/internal/config"
)

// ConnectFirestore はカタログ用のFirestoreクライアントを返す。
// 認証ファイル指定が無ければApplication Default Credentialsに任せる。
func ConnectFirestore(ctx context.Context, cfg config.Config) (*firestore.Client, error) {
	var opts []option.ClientOption
	if cfg.FirestoreCredsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirestoreCredsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.FirestoreProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore.NewClient failed (project=%s): %w", cfg.FirestoreProjectID, err)
	}

	return client, nil
}
