package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bnema/authflow-cli/internal/domain"
	"github.com/bnema/authflow-cli/internal/ports"
)

// Alphanumeric length of the state and nonce correlation strings.
const (
	stateLength = 32
	nonceLength = 32
)

// Outcome reports how Secure resolved. Meaningful only when the returned
// error is nil.
type Outcome string

const (
	// OutcomeAuthenticated means a completed login is loaded in memory.
	OutcomeAuthenticated Outcome = "authenticated"
	// OutcomeRedirected means the user agent was sent to the provider and
	// the flow resumes on the next invocation.
	OutcomeRedirected Outcome = "redirected"
)

// flowPhase is the explicit form of the state machine: derived once per
// Secure call from the two storage slots plus the current query, then
// dispatched on.
type flowPhase int

const (
	phaseAuthenticated flowPhase = iota
	phaseReturnedWithError
	phaseReturnedWithCode
	phaseAwaitingReturn
	phasePendingRedirect
)

type flowSnapshot struct {
	phase    flowPhase
	location *url.URL
	query    url.Values
	auth     domain.Authentication
}

type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	ExpiresIn        int64  `json:"expires_in"`
	IDToken          string `json:"id_token"`
	RefreshToken     string `json:"refresh_token"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// FlowService drives the authorization-code + PKCE flow against the session
// store and user agent it was built with. Call Secure once per process step
// and await it before calling again: the service is not safe for concurrent
// use, the two session slots have no cross-call locking of their own.
type FlowService struct {
	params domain.FlowParams
	store  ports.SessionStore
	agent  ports.UserAgent
	poster ports.FormPoster
	pkce   *PkceGenerator
	random ports.RandomSource

	auth *domain.Authentication
}

func NewFlowService(params domain.FlowParams, store ports.SessionStore, agent ports.UserAgent, poster ports.FormPoster, random ports.RandomSource) (*FlowService, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("validate flow params: %w", err)
	}
	if store == nil {
		return nil, errors.New("session store is required")
	}
	if agent == nil {
		return nil, errors.New("user agent is required")
	}
	if poster == nil {
		return nil, errors.New("form poster is required")
	}
	if random == nil {
		random = ports.CryptoRand{}
	}

	return &FlowService{
		params: params,
		store:  store,
		agent:  agent,
		poster: poster,
		pkce:   NewPkceGenerator(random),
		random: random,
	}, nil
}

// Authentication returns the in-memory copy of the completed login, if one
// is loaded.
func (s *FlowService) Authentication() (domain.Authentication, bool) {
	if s.auth == nil {
		return domain.Authentication{}, false
	}

	return *s.auth, true
}

// Secure resolves the current authentication state. An already-completed
// login is loaded and returned without touching the network or writing to
// the store; a provider return (code or error) is settled; otherwise a fresh
// attempt is persisted and the user agent is sent to the provider.
func (s *FlowService) Secure(ctx context.Context) (Outcome, error) {
	// Cleared up front: no failure leg below may leave a previously loaded
	// login visible. The success legs set it fresh.
	s.auth = nil

	snap, err := s.classify(ctx)
	if err != nil {
		return "", err
	}

	switch snap.phase {
	case phaseAuthenticated:
		s.auth = &snap.auth
		return OutcomeAuthenticated, nil
	case phaseReturnedWithError:
		return "", &domain.ProviderError{
			Category:    snap.query.Get("error"),
			Description: snap.query.Get("error_description"),
		}
	case phaseReturnedWithCode:
		return s.exchange(ctx, snap)
	case phaseAwaitingReturn, phasePendingRedirect:
		// A stale pending attempt is restarted, never resumed: the provider
		// has not returned, so its state and verifier are unusable.
		return s.start(ctx, snap)
	default:
		return "", fmt.Errorf("unhandled flow phase %d", snap.phase)
	}
}

func (s *FlowService) classify(ctx context.Context) (flowSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return flowSnapshot{}, err
	}

	rawLocation, err := s.agent.Location(ctx)
	if err != nil {
		return flowSnapshot{}, fmt.Errorf("read current location: %w", err)
	}
	location, err := url.Parse(rawLocation)
	if err != nil {
		return flowSnapshot{}, fmt.Errorf("parse current location: %w", err)
	}

	snap := flowSnapshot{location: location, query: location.Query()}

	stored, err := s.store.Get(ctx, authenticationKey)
	switch {
	case err == nil:
		auth, decodeErr := decodeAuthentication(stored)
		if decodeErr != nil {
			return flowSnapshot{}, decodeErr
		}
		snap.auth = auth
		snap.phase = phaseAuthenticated
		return snap, nil
	case !errors.Is(err, domain.ErrKeyNotFound):
		return flowSnapshot{}, fmt.Errorf("read authentication record: %w", err)
	}

	switch {
	case snap.query.Get("error") != "":
		snap.phase = phaseReturnedWithError
	case snap.query.Get("code") != "":
		snap.phase = phaseReturnedWithCode
	default:
		_, err := s.store.Get(ctx, flowStateKey)
		switch {
		case err == nil:
			snap.phase = phaseAwaitingReturn
		case errors.Is(err, domain.ErrKeyNotFound):
			snap.phase = phasePendingRedirect
		default:
			return flowSnapshot{}, fmt.Errorf("read flow state record: %w", err)
		}
	}

	return snap, nil
}

func (s *FlowService) start(ctx context.Context, snap flowSnapshot) (Outcome, error) {
	pair, err := s.pkce.Pair()
	if err != nil {
		return "", err
	}
	state, err := s.random.Text(stateLength)
	if err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	nonce, err := s.random.Text(nonceLength)
	if err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	fs := domain.FlowState{
		ThisURI: snap.location.String(),
		Nonce:   nonce,
		State:   state,
		Pkce:    pair,
	}

	encoded, err := encodeFlowState(fs)
	if err != nil {
		return "", err
	}
	if err := s.store.Put(ctx, flowStateKey, encoded); err != nil {
		return "", fmt.Errorf("persist flow state: %w", err)
	}

	authorizeURL, err := s.authorizeURL(fs)
	if err != nil {
		return "", err
	}
	if err := s.agent.Navigate(ctx, authorizeURL); err != nil {
		return "", fmt.Errorf("navigate to authorization endpoint: %w", err)
	}

	return OutcomeRedirected, nil
}

func (s *FlowService) authorizeURL(fs domain.FlowState) (string, error) {
	parsed, err := url.Parse(s.params.NormalizedIssuer() + "/authorize")
	if err != nil {
		return "", fmt.Errorf("parse authorization endpoint: %w", err)
	}

	q := parsed.Query()
	q.Set("client_id", s.params.ClientID)
	q.Set("redirect_uri", fs.ThisURI)
	q.Set("state", fs.State)
	q.Set("nonce", fs.Nonce)
	q.Set("response_type", "code")
	q.Set("scope", s.params.Scope)
	q.Set("code_challenge", fs.Pkce.Challenge)
	q.Set("code_challenge_method", ChallengeMethodS256)
	parsed.RawQuery = q.Encode()

	return parsed.String(), nil
}

// exchange redeems the returned code. Failure legs leave the stored flow
// state in place; a consumed code will be rejected by the provider on a
// re-attempt, but the record must survive for the caller to inspect.
func (s *FlowService) exchange(ctx context.Context, snap flowSnapshot) (Outcome, error) {
	stored, err := s.store.Get(ctx, flowStateKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return "", domain.ErrMissingFlowState
		}
		return "", fmt.Errorf("read flow state record: %w", err)
	}

	fs, err := decodeFlowState(stored)
	if err != nil {
		return "", err
	}

	if returned := snap.query.Get("state"); returned != fs.State {
		return "", domain.ErrStateMismatch
	}

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", snap.query.Get("code"))
	form.Set("code_verifier", fs.Pkce.Verifier)

	result, err := s.poster.PostForm(ctx, s.params.NormalizedIssuer()+"/oauth/token", form)
	if err != nil {
		return "", fmt.Errorf("post token endpoint: %w", err)
	}

	var parsed tokenResponse
	if jsonErr := json.Unmarshal(result.Body, &parsed); jsonErr != nil {
		if !statusOK(result.StatusCode) {
			return "", fmt.Errorf("token endpoint returned status %d", result.StatusCode)
		}
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedTokenResponse, jsonErr)
	}

	if parsed.Error != "" {
		return "", &domain.ProviderError{Category: parsed.Error, Description: parsed.ErrorDescription}
	}
	if parsed.AccessToken == "" {
		if !statusOK(result.StatusCode) {
			return "", fmt.Errorf("token endpoint returned status %d", result.StatusCode)
		}
		return "", domain.ErrMalformedTokenResponse
	}

	if parsed.IDToken != "" {
		if err := verifyNonce(parsed.IDToken, fs.Nonce); err != nil {
			return "", err
		}
	}

	auth := domain.Authentication{
		AccessToken:  parsed.AccessToken,
		ExpiresIn:    parsed.ExpiresIn,
		IDToken:      parsed.IDToken,
		RefreshToken: parsed.RefreshToken,
	}

	encoded, err := encodeAuthentication(auth)
	if err != nil {
		return "", err
	}
	if err := s.store.Put(ctx, authenticationKey, encoded); err != nil {
		return "", fmt.Errorf("persist authentication: %w", err)
	}
	if err := s.store.Delete(ctx, flowStateKey); err != nil {
		return "", fmt.Errorf("clear flow state: %w", err)
	}
	if err := s.agent.ReplaceLocation(ctx, fs.ThisURI); err != nil {
		return "", fmt.Errorf("restore visible location: %w", err)
	}

	s.auth = &auth
	return OutcomeAuthenticated, nil
}

func statusOK(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
