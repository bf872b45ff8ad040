package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/tabebui/internal/error_values"
	"github.com/limbo/tabebui/pkg/cleanup"
	"github.com/limbo/tabebui/pkg/entity"
)

// ProgressRepository keeps one JSONB row per user in progress_states.
type ProgressRepository struct {
	conn PgConnection
}

func NewProgressRepo(cfg DBConfig) *ProgressRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for progressRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ProgressRepository{
		conn: pool,
	}
}

func NewProgressRepoWithConn(conn PgConnection) *ProgressRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressRepo: " + err.Error())
	}
	return &ProgressRepository{
		conn: conn,
	}
}

func (pr *ProgressRepository) Load(ctx context.Context, userID uuid.UUID) (*entity.ProgressState, error) {
	row := pr.conn.QueryRow(
		ctx,
		`SELECT state FROM progress_states WHERE user_id = $1;`,
		userID,
	)
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStateNotFound
		}
		return nil, fmt.Errorf("%w: loading state: %s", errorvalues.ErrStorage, err.Error())
	}
	return decodeState(raw)
}

func (pr *ProgressRepository) Save(ctx context.Context, userID uuid.UUID, state *entity.ProgressState) error {
	raw, err := encodeState(state)
	if err != nil {
		return err
	}
	_, err = pr.conn.Exec(
		ctx,
		`INSERT INTO progress_states (user_id, state, updated_at) VALUES ($1, $2, NOW()) ON CONFLICT (user_id) DO UPDATE SET state = EXCLUDED.state, updated_at = NOW();`,
		userID,
		raw,
	)
	if err != nil {
		return fmt.Errorf("%w: saving state: %s", errorvalues.ErrStorage, err.Error())
	}
	return nil
}

func encodeState(state *entity.ProgressState) ([]byte, error) {
	if state == nil {
		return nil, fmt.Errorf("%w: state is nil", errorvalues.ErrInvalidArgument)
	}
	raw, err := sonic.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding state: %s", errorvalues.ErrStorage, err.Error())
	}
	return raw, nil
}

func decodeState(raw []byte) (*entity.ProgressState, error) {
	state := &entity.ProgressState{}
	if err := sonic.Unmarshal(raw, state); err != nil {
		return nil, fmt.Errorf("%w: corrupt state blob: %s", errorvalues.ErrStorage, err.Error())
	}
	return state, nil
}
