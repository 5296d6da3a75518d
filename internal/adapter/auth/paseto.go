package auth

import (
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/MikeRez0/dropshop/internal/adapter/config"
	"github.com/MikeRez0/dropshop/internal/core/domain"
	"github.com/MikeRez0/dropshop/internal/core/port"
)

const payloadClaim = "payload"

const defaultTokenTTL = 24 * time.Hour

type PasetoToken struct {
	parser *paseto.Parser
	key    *paseto.V4SymmetricKey
	ttl    time.Duration
}

// New builds the token service. Without a configured key a random one is
// used, and tokens stop verifying after a restart.
func New(conf *config.Token) (*PasetoToken, error) {
	var key paseto.V4SymmetricKey
	if conf.KeyHex == "" {
		key = paseto.NewV4SymmetricKey()
	} else {
		var err error
		key, err = paseto.V4SymmetricKeyFromHex(conf.KeyHex)
		if err != nil {
			return nil, fmt.Errorf("error parsing token key: %w", err)
		}
	}

	ttl := conf.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	parser := paseto.NewParser()
	s := PasetoToken{
		parser: &parser,
		key:    &key,
		ttl:    ttl,
	}

	return &s, nil
}

// KeyHex exports the symmetric key so operators can pin it in TOKEN_KEY.
func (p *PasetoToken) KeyHex() string {
	return p.key.ExportHex()
}

func (p *PasetoToken) CreateToken(user *domain.User) (string, error) {
	now := time.Now()
	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(p.ttl))

	role := user.Role
	if role == "" {
		role = domain.RoleUser
	}
	payload := port.TokenPayload{UserID: user.ID, Role: role}
	err := token.Set(payloadClaim, payload)
	if err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(*p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(*p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	payload := port.TokenPayload{}
	err = parsedToken.Get(payloadClaim, &payload)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
