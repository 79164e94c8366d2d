package ai

// PrioritizePrompt scores a new report from its engagement counts.
// Args: description, likes, shares, comments, existing-score fragment.
const PrioritizePrompt = `You are an AI assistant helping to prioritize civic issues based on community engagement.

Given the following information about a civic issue, determine a priority score between 0 and 100, where 100 is the highest priority.

Issue Description: %s
Likes: %d
Shares: %d
Comments: %d
%s
Consider the number of likes, shares, and comments as indicators of community interest and urgency. Issues with higher engagement should receive higher priority scores. If there is an existing priority score, take that into account as well.

You must respond ONLY with a valid JSON object, no other text before or after. Do not include any markdown formatting or code blocks.

{
  "priorityScore": <number between 0 and 100>,
  "reasoning": "brief explanation of why the issue was assigned the given priority score"
}`

// ReprioritizePrompt re-scores an issue after an admin verified it as
// genuine. Invalid reports never reach the model; their score is 0 by
// contract. Args: description, currentPriority, likes, comments, shares.
const ReprioritizePrompt = `You are an AI assistant for a civic engagement platform. Your task is to re-evaluate the priority of an issue after an administrator has verified its validity.

Verification by an admin confirms the issue is real and requires attention. This should significantly increase its priority.

Issue Description: %s
Current Priority: %d
Verified: true
Engagement:
- Likes: %d
- Comments: %d
- Shares: %d

Significantly increase the priority score (on a scale of 0-100). The increase should reflect the certainty that this is a real-world problem needing a solution. A verified, highly-engaged issue should be among the highest priorities. The new score must never be lower than the current priority.

You must respond ONLY with a valid JSON object, no other text before or after. Do not include any markdown formatting or code blocks.

{
  "newPriorityScore": <number between 0 and 100>,
  "reasoning": "brief justification for the new priority score"
}`

// RoutePrompt suggests a department for a report.
// Args: department list, description, category, location.
const RoutePrompt = `You are an expert in civic issue routing. Given the description, category, and location of a reported issue, you will determine the most appropriate department to handle the report.

The department must be exactly one of: %s

Description: %s
Category: %s
Location: %s

Based on this information, determine the appropriate department and provide a brief reason for your decision.

You must respond ONLY with a valid JSON object, no other text before or after. Do not include any markdown formatting or code blocks.

{
  "department": "one of the listed departments",
  "reason": "brief reason for routing the report to that department"
}`
