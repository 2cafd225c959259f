package insights

import (
	"context"
	"sync"
)

type ClientStub struct {
	mu          sync.RWMutex
	text        string
	err         error
	lastPrompt  string
	invocations int
}

func NewClientStub() *ClientStub {
	return &ClientStub{}
}

func (c *ClientStub) GenerateInsights(ctx context.Context, prompt string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastPrompt = prompt
	c.invocations++
	if c.err != nil {
		return "", c.err
	}
	return c.text, nil
}

func (c *ClientStub) SetText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
}

func (c *ClientStub) SetError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

func (c *ClientStub) LastPrompt() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastPrompt
}

func (c *ClientStub) Invocations() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.invocations
}

func (c *ClientStub) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = ""
	c.err = nil
	c.lastPrompt = ""
	c.invocations = 0
}
