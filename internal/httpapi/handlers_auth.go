package httpapi

import (
	"net/http"

	"github.com/avolkovs/menuboard/internal/auth"
	"github.com/avolkovs/menuboard/internal/validation"
	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form := validation.AuthForm{Username: req.Username, Password: req.Password}
	if errs := validation.ValidateRegister(form, req.ConfirmPassword); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	ctx := c.Request.Context()
	s.auth.Register(ctx, auth.User{Username: req.Username, Password: req.Password})

	sess := s.auth.Session()
	if sess.Error != "" {
		// Report and clear, like any UI consuming Session.Error.
		s.auth.ClearError(ctx)
		c.JSON(http.StatusConflict, gin.H{"error": sess.Error})
		return
	}

	token, err := s.generateToken(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue session token"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": gin.H{"username": req.Username}})
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form := validation.AuthForm{Username: req.Username, Password: req.Password}
	if errs := validation.ValidateAuth(form); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	ctx := c.Request.Context()
	s.auth.Login(ctx, req.Username, req.Password)

	sess := s.auth.Session()
	if sess.Error != "" {
		s.auth.ClearError(ctx)
		c.JSON(http.StatusUnauthorized, gin.H{"error": sess.Error})
		return
	}

	token, err := s.generateToken(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue session token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": gin.H{"username": req.Username}})
}

func (s *Server) logout(c *gin.Context) {
	s.auth.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (s *Server) session(c *gin.Context) {
	sess := s.auth.Session()

	var username any
	if sess.CurrentUser != nil {
		username = sess.CurrentUser.Username
	}
	c.JSON(http.StatusOK, gin.H{
		"isAuthenticated": sess.IsAuthenticated,
		"username":        username,
	})
}
