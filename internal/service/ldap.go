package service

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"caregiver-shifts-backend/internal/config"
	"caregiver-shifts-backend/internal/database/models"
	apperrors "caregiver-shifts-backend/internal/errors"

	"github.com/go-ldap/ldap/v3"
)

// ldapClient is the part of *ldap.Conn the directory uses
type ldapClient interface {
	Bind(username, password string) error
	Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error)
	Close() error
	SetTimeout(d time.Duration)
}

var dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
	return ldap.DialTLS(network, addr, cfg)
}

var ldapAttributes = []string{"uid", "displayName", "givenName", "sn", "mail", "mobile", "employeeType"}

// LDAPDirectory resolves caregivers by uid from an LDAP server
type LDAPDirectory struct {
	cfg *config.Config
}

// NewLDAPDirectory creates a new LDAP directory
func NewLDAPDirectory(cfg *config.Config) *LDAPDirectory {
	return &LDAPDirectory{cfg: cfg}
}

// Resolve looks a caregiver up by uid. Entries whose employeeType is
// "inactive" resolve to inactive caregivers.
func (d *LDAPDirectory) Resolve(ctx context.Context, caregiverID string) (*models.Caregiver, error) {
	addr := d.cfg.LDAPHost + ":" + d.cfg.LDAPPort

	// Establish TLS connection to LDAP server
	l, err := dialLDAP("tcp", addr, &tls.Config{InsecureSkipVerify: d.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, apperrors.NewPersistenceError("ldap dial", err)
	}
	defer l.Close()

	if d.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(d.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(d.cfg.LDAPBindDN, d.cfg.LDAPBindPW); err != nil {
		return nil, apperrors.NewPersistenceError("ldap bind", err)
	}

	req := ldap.NewSearchRequest(
		d.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		2,
		d.cfg.LDAPTimeoutSec,
		false,
		"(uid="+ldap.EscapeFilter(caregiverID)+")",
		ldapAttributes,
		nil,
	)
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("ldap search", err)
	}

	res, err := l.Search(req)
	if err != nil {
		return nil, apperrors.NewPersistenceError("ldap search", err)
	}
	if len(res.Entries) == 0 {
		return nil, apperrors.NewNotFoundError("caregiver", caregiverID)
	}

	return caregiverFromEntry(caregiverID, res.Entries[0]), nil
}

func caregiverFromEntry(id string, e *ldap.Entry) *models.Caregiver {
	get := func(a string) string { return e.GetAttributeValue(a) }

	name := get("displayName")
	if name == "" {
		name = strings.TrimSpace(get("givenName") + " " + get("sn"))
	}
	if name == "" {
		name = id
	}
	return &models.Caregiver{
		ID:          id,
		DisplayName: name,
		Email:       get("mail"),
		Phone:       get("mobile"),
		Active:      !strings.EqualFold(get("employeeType"), "inactive"),
	}
}
