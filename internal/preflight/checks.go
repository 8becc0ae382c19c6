package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"marquee/internal/config"
	"marquee/internal/library"
	"marquee/internal/services/oracle"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckLibraryIndex verifies the configured library index parses and holds movies.
func CheckLibraryIndex(path string) Result {
	const name = "Library index"

	idx, err := library.LoadIndex(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	if idx.Len() == 0 {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, library.ErrEmptyIndex)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d movies)", path, idx.Len())}
}

// CheckOracle verifies that the oracle API is reachable and the key is valid.
// It uses a 30-second timeout and a single attempt.
func CheckOracle(ctx context.Context, cfg config.OracleConfig) Result {
	const name = "Oracle"

	if cfg.APIKey == "" {
		return Result{Name: name, Detail: "API key missing (set oracle.api_key or MARQUEE_ORACLE_API_KEY)"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client := oracle.NewClient(oracle.Config{
		APIKey:         cfg.APIKey,
		BaseURL:        cfg.BaseURL,
		Model:          cfg.Model,
		TimeoutSeconds: cfg.TimeoutSeconds,
	})
	if err := client.HealthCheck(checkCtx); err != nil {
		return Result{Name: name, Detail: summarizeOracleError(err)}
	}
	return Result{Name: name, Passed: true, Detail: "API reachable"}
}

func summarizeOracleError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "health check timed out (oracle API unresponsive)"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "health check timed out (oracle API unreachable)"
	}
	return err.Error()
}
