package util

import (
	"database/sql"
	"net"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/pingcap/errors"
)

// EscapeIdentifier escapes an MySQL identifier.
func EscapeIdentifier(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "``") + "`"
}

// ConnectDB returns a handle to a MySQL compatible database. It doesn't
// connect until the handle is used.
func ConnectDB(
	host string,
	port int,
	user string,
	password string,
	dbName string,
) (*sql.DB, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	cfg := mysql.NewConfig()
	cfg.User = user
	cfg.Passwd = password
	cfg.Addr = addr
	cfg.DBName = dbName
	cfg.AllowNativePasswords = true
	cfg.ParseTime = true

	c, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, errors.Annotatef(err, "connect to %s as %s", addr, user)
	}
	return sql.OpenDB(c), nil
}
