// Copyright (c) 2023 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package server

import (
	"bytes"
	"crypto/rsa"
	"encoding/base64"
	"encoding/binary"
	"math/big"
	"strings"
	"time"

	"github.com/AccelByte/accelbyte-go-sdk/iam-sdk/pkg/iamclient/o_auth2_0"
	"github.com/AccelByte/accelbyte-go-sdk/iam-sdk/pkg/iamclientmodels"
	"github.com/AccelByte/accelbyte-go-sdk/services-api/pkg/factory"
	"github.com/AccelByte/accelbyte-go-sdk/services-api/pkg/service/iam"
	sdkAuth "github.com/AccelByte/accelbyte-go-sdk/services-api/pkg/utils/auth"
	"github.com/AccelByte/bloom"
	"github.com/AccelByte/go-jose/jwt"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	jwksCacheKey       = "jwks"
	revocationCacheKey = "revocation"

	requiredPermissionAction = 2
)

var jwtEncoding = base64.URLEncoding.WithPadding(base64.NoPadding)

type Permission struct {
	Resource string `json:"resource"`
	Action   int    `json:"action"`
}

type JWTClaims struct {
	jwt.Claims
	Namespace       string       `json:"namespace"`
	ExtendNamespace string       `json:"extend_namespace"`
	DisplayName     string       `json:"display_name"`
	Permissions     []Permission `json:"permissions"`
}

// Validate checks the standard time-based claims.
func (c *JWTClaims) Validate() error {
	return c.Claims.Validate(jwt.Expected{Time: time.Now()})
}

type revocationList struct {
	revokedTokens *bloom.Filter
	revokedUsers  map[string]time.Time
}

// sdkConfigRepository feeds explicit config into the IAM SDK client instead
// of the SDK's env-based default repository.
type sdkConfigRepository struct {
	baseURL      string
	clientID     string
	clientSecret string
}

func (s *sdkConfigRepository) GetClientId() string       { return s.clientID }
func (s *sdkConfigRepository) GetClientSecret() string   { return s.clientSecret }
func (s *sdkConfigRepository) GetJusticeBaseUrl() string { return s.baseURL }

// DefaultTokenValidator validates access tokens against the IAM service:
// signature via the published JWKS, expiry, the revocation list, and the
// permission this service requires. JWKS and revocation lookups are cached.
type DefaultTokenValidator struct {
	oauthService *iam.OAuth20Service
	namespace    string
	resourceName string
	cache        *gocache.Cache
}

func NewTokenValidator(baseURL, clientID, clientSecret, namespace, resourceName string, cacheTTL time.Duration) *DefaultTokenValidator {
	configRepo := &sdkConfigRepository{
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
	}

	return &DefaultTokenValidator{
		oauthService: &iam.OAuth20Service{
			Client:           factory.NewIamClient(configRepo),
			ConfigRepository: configRepo,
			TokenRepository:  sdkAuth.DefaultTokenRepositoryImpl(),
		},
		namespace:    namespace,
		resourceName: resourceName,
		cache:        gocache.New(cacheTTL, 2*cacheTTL),
	}
}

func (v *DefaultTokenValidator) Validate(accessToken string) error {
	parsedToken, err := jwt.ParseSigned(accessToken)
	if err != nil {
		return errors.Wrap(err, "unable to parse JWT")
	}
	if len(parsedToken.Headers) == 0 || parsedToken.Headers[0].KeyID == "" {
		return errors.New("no key id in token header")
	}

	keys, err := v.jwks()
	if err != nil {
		return err
	}
	key, found := keys[parsedToken.Headers[0].KeyID]
	if !found {
		return errors.Errorf("no public key for key id %s", parsedToken.Headers[0].KeyID)
	}

	claims := JWTClaims{}
	if err = parsedToken.Claims(key, &claims); err != nil {
		return errors.Wrap(err, "unable to verify JWT")
	}

	if err = claims.Validate(); err != nil {
		if err == jwt.ErrExpired {
			return errors.New("token expired")
		}

		return errors.Wrap(err, "unable to validate JWT")
	}

	revocations, err := v.revocations()
	if err != nil {
		return err
	}
	if revocations.revokedTokens.MightContain([]byte(accessToken)) {
		return errors.New("token is revoked")
	}
	for userID, revokedAt := range revocations.revokedUsers {
		if userID == claims.Subject && revokedAt.Unix() >= int64(claims.IssuedAt) {
			return errors.New("user tokens are revoked")
		}
	}

	return v.validatePermissions(&claims)
}

// ParseClaims reads the claims without re-verifying the signature; callers
// are expected to run Validate first.
func (v *DefaultTokenValidator) ParseClaims(accessToken string) (*JWTClaims, error) {
	parsedToken, err := jwt.ParseSigned(accessToken)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse JWT")
	}

	claims := &JWTClaims{}
	if err = parsedToken.UnsafeClaimsWithoutVerification(claims); err != nil {
		return nil, errors.Wrap(err, "unable to read JWT claims")
	}

	return claims, nil
}

func (v *DefaultTokenValidator) validatePermissions(claims *JWTClaims) error {
	requiredResource := "NAMESPACE:" + claims.Namespace + ":" + v.resourceName

	for _, grantedPermission := range claims.Permissions {
		if resourceAllowed(grantedPermission.Resource, requiredResource) &&
			actionAllowed(grantedPermission.Action, requiredPermissionAction) {
			return nil
		}
	}

	return errors.Errorf("token does not carry the %s permission", requiredResource)
}

func (v *DefaultTokenValidator) jwks() (map[string]*rsa.PublicKey, error) {
	if cached, found := v.cache.Get(jwksCacheKey); found {
		return cached.(map[string]*rsa.PublicKey), nil
	}

	getJWKSV3, err := v.oauthService.GetJWKSV3Short(&o_auth2_0.GetJWKSV3Params{})
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch JWKS")
	}

	keys := make(map[string]*rsa.PublicKey, len(getJWKSV3.Keys))
	for _, key := range getJWKSV3.Keys {
		publicKey, errGenerate := generatePublicKey(key)
		if errGenerate != nil {
			return nil, errGenerate
		}
		keys[key.Kid] = publicKey
	}
	v.cache.SetDefault(jwksCacheKey, keys)
	logrus.Infof("fetched %d JWKS keys", len(keys))

	return keys, nil
}

func (v *DefaultTokenValidator) revocations() (*revocationList, error) {
	if cached, found := v.cache.Get(revocationCacheKey); found {
		return cached.(*revocationList), nil
	}

	fetched, err := v.oauthService.GetRevocationListV3Short(&o_auth2_0.GetRevocationListV3Params{})
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch revocation list")
	}

	list := &revocationList{
		revokedTokens: bloom.From(fetched.RevokedTokens.Bits, uint(*fetched.RevokedTokens.K)),
		revokedUsers:  make(map[string]time.Time, len(fetched.RevokedUsers)),
	}
	for _, revokedUser := range fetched.RevokedUsers {
		list.revokedUsers[*revokedUser.ID] = time.Time(revokedUser.RevokedAt)
	}
	v.cache.SetDefault(revocationCacheKey, list)

	return list, nil
}

func resourceAllowed(accessPermissionResource string, requiredPermissionResource string) bool {
	requiredPermResSections := strings.Split(requiredPermissionResource, ":")
	requiredPermResSectionLen := len(requiredPermResSections)
	accessPermResSections := strings.Split(accessPermissionResource, ":")
	accessPermResSectionLen := len(accessPermResSections)

	minSectionLen := accessPermResSectionLen
	if minSectionLen > requiredPermResSectionLen {
		minSectionLen = requiredPermResSectionLen
	}

	for i := 0; i < minSectionLen; i++ {
		userSection := accessPermResSections[i]
		requiredSection := requiredPermResSections[i]

		if userSection != requiredSection && userSection != "*" {
			return false
		}
	}

	if accessPermResSectionLen == requiredPermResSectionLen {
		return true
	}

	if accessPermResSectionLen < requiredPermResSectionLen {
		if accessPermResSections[accessPermResSectionLen-1] == "*" {
			if accessPermResSectionLen < 2 {
				return true
			}

			segment := accessPermResSections[accessPermResSectionLen-2]
			if segment == "NAMESPACE" || segment == "USER" {
				return false
			}

			return true
		}

		return false
	}

	for i := requiredPermResSectionLen; i < accessPermResSectionLen; i++ {
		if accessPermResSections[i] != "*" {
			return false
		}
	}

	return true
}

func actionAllowed(grantedAction int, requiredAction int) bool {
	return grantedAction&requiredAction == requiredAction
}

func generatePublicKey(jwk *iamclientmodels.OauthcommonJWKKey) (*rsa.PublicKey, error) {
	n, err := getModulus(jwk.N)
	if err != nil {
		return nil, err
	}

	e, err := getPublicExponent(jwk.E)
	if err != nil {
		return nil, err
	}

	return &rsa.PublicKey{N: n, E: e}, nil
}

func getModulus(jwkN string) (*big.Int, error) {
	decodedN, err := jwtEncoding.DecodeString(jwkN)
	if err != nil {
		return nil, errors.Wrap(err, "getModulus: unable to decode JWK modulus string")
	}

	n := big.NewInt(0)
	n.SetBytes(decodedN)

	return n, nil
}

func getPublicExponent(jwkE string) (int, error) {
	decodedE, err := jwtEncoding.DecodeString(jwkE)
	if err != nil {
		return 0, errors.Wrap(err, "getPublicExponent: unable to decode JWK exponent string")
	}

	eBytes := decodedE
	if len(decodedE) < 8 {
		eBytes = make([]byte, 8-len(decodedE), 8)
		eBytes = append(eBytes, decodedE...)
	}

	eReader := bytes.NewReader(eBytes)

	var e uint64
	if err = binary.Read(eReader, binary.BigEndian, &e); err != nil {
		return 0, errors.Wrap(err, "getPublicExponent: unable to read JWK exponent bytes")
	}

	return int(e), nil
}
