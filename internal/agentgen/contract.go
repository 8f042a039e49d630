package agentgen

import (
	"context"
	"strings"
)

// SystemInstruction is sent unchanged with every request.
const SystemInstruction = `You are an expert AI Agent Code Generator. Your primary function is to generate JavaScript (Node.js compatible) code for an AI agent based on a user's task description.

Guidelines for code generation:
1.  **Language:** JavaScript (Node.js compatible).
2.  **Structure:** The agent should ideally be a self-contained function or a class.
3.  **Comments:** Include clear, concise comments explaining the functionality of major code parts.
4.  **Usability:** The generated code should be directly usable or provide a clear template.
5.  **Clarity:** If the task is too complex for a simple snippet or requires external APIs not easily mockable, provide a conceptual outline or a class structure with clear TODO comments indicating where external logic/API calls would go.
6.  **Output Format:** Output ONLY the JavaScript code block itself, wrapped in ` + "```javascript ... ```" + `. Do NOT include any other explanatory text, greetings, or apologies before or after the code block.

Example for a simple task: "an agent that greets a user":

` + "```javascript" + `
/**
 * Agent that greets a user.
 * @param {string} userName - The name of the user to greet.
 * @returns {string} A greeting message.
 */
function greetingAgent(userName) {
  if (!userName || typeof userName !== 'string' || userName.trim() === '') {
    // Handle cases with no or invalid username
    return "Hello, mysterious guest! Please provide a valid name.";
  }
  return ` + "`Hello, ${userName}! Welcome to the system.`" + `;
}

// Example usage (can be commented out or included for testing):
// const user = "Alice";
// console.log(greetingAgent(user)); // Output: Hello, Alice! Welcome to the system.
// console.log(greetingAgent("")); // Output: Hello, mysterious guest! Please provide a valid name.
` + "```" + `

Now, proceed to generate the JavaScript code based on the user's task.
`

// Sampling holds the backend sampling knobs.
type Sampling struct {
	Temperature float32 `json:"temperature"`
	TopP        float32 `json:"top_p"`
	TopK        float32 `json:"top_k"`
}

// DefaultSampling biases the backend toward literal instruction-following.
var DefaultSampling = Sampling{
	Temperature: 0.5,
	TopP:        0.9,
	TopK:        40,
}

// RequestPayload is everything the backend needs for one generation.
type RequestPayload struct {
	SystemInstruction string
	UserMessage       string
	Sampling          Sampling
}

// ModelReply is the raw text returned by the backend.
type ModelReply struct {
	Text string
}

// Backend performs the single external generation call.
type Backend interface {
	Invoke(ctx context.Context, payload *RequestPayload) (*ModelReply, error)
	Model() string
}

// BuildRequest constructs the outbound payload for a task description.
func BuildRequest(taskDescription string) (*RequestPayload, error) {
	if strings.TrimSpace(taskDescription) == "" {
		return nil, newError(KindInvalidInput, "task description cannot be empty", nil)
	}

	return &RequestPayload{
		SystemInstruction: SystemInstruction,
		UserMessage:       `User's Task: "` + taskDescription + `"`,
		Sampling:          DefaultSampling,
	}, nil
}
