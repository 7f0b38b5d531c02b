package notify

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/http"
	"net/smtp"
	"strconv"
	"time"
)

const (
	DefaultSMTPHost = "smtp.gmail.com"
	DefaultSMTPPort = 587

	smtpConnectTimeout = 10 * time.Second
	implicitTLSPort    = 465
)

// SMTPTransport sends mail through an authenticated SMTP server: STARTTLS on the
// submission port, implicit TLS on 465.
type SMTPTransport struct {
	host     string
	port     int
	username string
	password string
}

// NewSMTPTransport creates a transport for the configured account
func NewSMTPTransport(config Config) *SMTPTransport {
	t := &SMTPTransport{
		host:     config.Host,
		port:     config.Port,
		username: config.Username,
		password: config.Password,
	}
	if t.host == "" {
		t.host = DefaultSMTPHost
	}
	if t.port == 0 {
		t.port = DefaultSMTPPort
	}
	return t
}

// Send implements Transport
func (t *SMTPTransport) Send(ctx context.Context, msg *Message) error {
	cn, err := t.connection(ctx)
	if err != nil {
		return err
	}
	defer cn.Close()

	if err := cn.Mail(msg.From); err != nil {
		return err
	}
	if err := cn.Rcpt(msg.To); err != nil {
		return err
	}
	wr, err := cn.Data()
	if err != nil {
		return err
	}
	if _, err := wr.Write(buildMessage(msg)); err != nil {
		wr.Close()
		return err
	}
	if err := wr.Close(); err != nil {
		return err
	}
	return cn.Quit()
}

func (t *SMTPTransport) connection(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(t.host, strconv.Itoa(t.port))
	dialer := &net.Dialer{Timeout: smtpConnectTimeout}

	var (
		conn net.Conn
		err  error
	)
	if t.port == implicitTLSPort {
		tlsDialer := &tls.Dialer{NetDialer: dialer, Config: &tls.Config{ServerName: t.host}}
		conn, err = tlsDialer.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, errors.New("failed to connect to SMTP server: " + err.Error())
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	cn, err := smtp.NewClient(conn, t.host)
	if err != nil {
		conn.Close()
		return nil, errors.New("failed to create SMTP client: " + err.Error())
	}
	if t.port != implicitTLSPort {
		if err := cn.StartTLS(&tls.Config{ServerName: t.host}); err != nil {
			cn.Close()
			return nil, errors.New("failed to StartTLS with SMTP server: " + err.Error())
		}
	}
	if err := cn.Auth(smtp.PlainAuth("", t.username, t.password, t.host)); err != nil {
		cn.Close()
		return nil, errors.New("smtp auth failed: " + err.Error())
	}
	return cn, nil
}

// buildMessage renders headers and the HTML body as an RFC 5322 message
func buildMessage(msg *Message) []byte {
	var buf bytes.Buffer
	header := http.Header{}
	header.Set("From", msg.From)
	header.Set("To", msg.To)
	header.Set("Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	header.Set("MIME-Version", "1.0")
	header.Set("Content-Type", `text/html; charset="UTF-8"`)
	header.Set("Date", time.Now().Format(time.RFC1123Z))
	_ = header.Write(&buf)
	buf.WriteString("\r\n")
	buf.WriteString(msg.HTML)
	return buf.Bytes()
}

func (t *SMTPTransport) String() string {
	return fmt.Sprintf("smtp://%s@%s:%d", t.username, t.host, t.port)
}
