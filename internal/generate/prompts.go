// File path: internal/generate/prompts.go
package generate

import "github.com/tmc/langchaingo/prompts"

// Instruction templates for every generation step. Each is parameterized by
// the caller's issue text and supporting context; the authority templates
// additionally take the generated subject line. The numbered-point steps ask
// for an exact format, but the responses are renumbered anyway.

var issueVars = []string{"issue", "context"}

var pilFactsPrompt = prompts.NewPromptTemplate(
	"You are a senior advocate drafting a PIL petition. Given the following issue, write a concise and relevant FACTS OF THE CASE section.\n"+
		"Issue: {{.issue}}\n"+
		"Additional Context: {{.context}}\n"+
		"Generate 2-3 key points that are most relevant to the case. Each point should be:\n"+
		"- Clear and concise\n"+
		"- Include specific dates and facts\n"+
		"- Focus on the most critical aspects\n"+
		"- Be properly formatted as numbered points\n"+
		"- DO NOT use any markdown formatting or special characters\n"+
		"Format the response as:\n"+
		"1. [First key point]\n"+
		"2. [Second key point]\n"+
		"3. [Third key point]",
	issueVars)

var pilLegalPrompt = prompts.NewPromptTemplate(
	"You are a senior advocate drafting a PIL petition. Given the following issue, write a concise and relevant LEGAL BASIS section.\n"+
		"Issue: {{.issue}}\n"+
		"Additional Context: {{.context}}\n"+
		"Generate 3-4 key legal points that are most relevant to the case. Each point should:\n"+
		"- Cite specific constitutional provisions, laws, or precedents\n"+
		"- Explain how they apply to the case\n"+
		"- Be properly formatted as numbered points\n"+
		"- DO NOT use any markdown formatting or special characters\n"+
		"Format the response as:\n"+
		"1. [First legal point with citation]\n"+
		"2. [Second legal point with citation]\n"+
		"3. [Third legal point with citation]\n"+
		"4. [Fourth legal point with citation]",
	issueVars)

var pilPrayersPrompt = prompts.NewPromptTemplate(
	"You are a senior advocate drafting a PIL petition. Given the following issue, write 1-2 specific and relevant PRAYERS.\n"+
		"Issue: {{.issue}}\n"+
		"Additional Context: {{.context}}\n"+
		"Generate 1-2 specific prayers that:\n"+
		"- Are directly related to the issue\n"+
		"- Request concrete actions from the authorities\n"+
		"- Include specific timeframes where appropriate\n"+
		"- Be properly formatted as numbered points\n"+
		"- Be concise and to the point\n"+
		"- DO NOT use any markdown formatting or special characters\n"+
		"Format the response as:\n"+
		"1. [First prayer]\n"+
		"2. [Second prayer]",
	issueVars)

var rtiSubjectPrompt = prompts.NewPromptTemplate(
	"You are drafting an RTI application. Given the following issue, write a concise subject line.\n"+
		"Issue: {{.issue}}\n"+
		"Additional Context: {{.context}}\n"+
		"The subject line should be clear, specific, and indicate what information is being sought.\n"+
		"It should start with 'RTI Application for...'\n"+
		"Format: Just provide the subject line, nothing else.",
	issueVars)

var rtiIntroPrompt = prompts.NewPromptTemplate(
	"You are drafting an RTI application. Given the following issue, write a concise introduction paragraph.\n"+
		"Issue: {{.issue}}\n"+
		"Additional Context: {{.context}}\n"+
		"The introduction should establish your identity, the basis of your right to information, and briefly introduce the issue.\n"+
		"Format: A single paragraph of 3-5 sentences.",
	issueVars)

var rtiRequestsPrompt = prompts.NewPromptTemplate(
	"You are drafting an RTI application. Given the following issue, write 3-5 specific information requests.\n"+
		"Issue: {{.issue}}\n"+
		"Additional Context: {{.context}}\n"+
		"Each request should:\n"+
		"- Be specific and precise\n"+
		"- Focus on information the authority is likely to have\n"+
		"- Include timeframes where relevant\n"+
		"- Be properly formatted as numbered points\n"+
		"Format the response as:\n"+
		"1. [First information request]\n"+
		"2. [Second information request]\n"+
		"3. [Third information request]\n"+
		"4. [Fourth information request]\n"+
		"5. [Fifth information request]",
	issueVars)

var rtiClosingPrompt = prompts.NewPromptTemplate(
	"You are drafting an RTI application. Given the following issue, write a concluding paragraph.\n"+
		"Issue: {{.issue}}\n"+
		"Additional Context: {{.context}}\n"+
		"The closing should:\n"+
		"- Express willingness to pay necessary fees\n"+
		"- Request a timely response\n"+
		"- Express gratitude\n"+
		"Format: A single paragraph of 2-3 sentences.",
	issueVars)

var rtiAuthorityPrompt = prompts.NewPromptTemplate(
	"Given the following RTI application details, determine the most appropriate government authority to address this request:\n\n"+
		"Subject: {{.subject}}\n"+
		"Issue: {{.issue}}\n\n"+
		"Respond with just the name of the most appropriate government department/authority at the central, state, or local level.",
	[]string{"subject", "issue"})

var complaintFactsPrompt = prompts.NewPromptTemplate(
	"You are drafting a formal consumer complaint. Given the following issue, write a concise and relevant FACTS OF THE CASE section.\n"+
		"Issue: {{.issue}}\n"+
		"Additional Context: {{.context}}\n"+
		"Generate 2-3 key points that are most relevant to the complaint. Each point should be:\n"+
		"- Clear and concise\n"+
		"- Include specific dates and facts\n"+
		"- Focus on the most critical aspects\n"+
		"- Be properly formatted as numbered points\n"+
		"Format the response as:\n"+
		"1. [First key point]\n"+
		"2. [Second key point]\n"+
		"3. [Third key point]",
	issueVars)

var complaintSubjectPrompt = prompts.NewPromptTemplate(
	"You are drafting a formal consumer complaint. Given the following issue, write a concise subject line.\n"+
		"Issue: {{.issue}}\n"+
		"Additional Context: {{.context}}\n"+
		"The subject line should be clear, specific, and indicate the nature of the complaint.\n"+
		"Format: Just provide the subject line, nothing else.",
	issueVars)

var complaintIntroPrompt = prompts.NewPromptTemplate(
	"You are drafting a formal consumer complaint. Given the following issue, write a concise introduction paragraph.\n"+
		"Issue: {{.issue}}\n"+
		"Additional Context: {{.context}}\n"+
		"The introduction should establish your identity and briefly introduce the issue.\n"+
		"Format: A single paragraph of 3-5 sentences.",
	issueVars)

var complaintClosingPrompt = prompts.NewPromptTemplate(
	"You are drafting a formal consumer complaint. Given the following issue, write a concluding paragraph.\n"+
		"Issue: {{.issue}}\n"+
		"Additional Context: {{.context}}\n"+
		"The closing should:\n"+
		"- Express what outcome you desire\n"+
		"- Request a timely response\n"+
		"- Express gratitude\n"+
		"Format: A single paragraph of 2-3 sentences.",
	issueVars)

var complaintGrievancesPrompt = prompts.NewPromptTemplate(
	"You are drafting a formal consumer complaint. Given the following issue, write 2-3 specific grievances.\n"+
		"Issue: {{.issue}}\n"+
		"Additional Context: {{.context}}\n"+
		"Each grievance should:\n"+
		"- Be specific and precise\n"+
		"- Focus on a distinct aspect of the complaint\n"+
		"- Be properly formatted as numbered points\n"+
		"Format the response as:\n"+
		"1. [First grievance]\n"+
		"2. [Second grievance]\n"+
		"3. [Third grievance]",
	issueVars)

var complaintDemandsPrompt = prompts.NewPromptTemplate(
	"You are drafting a formal consumer complaint. Given the following issue, write 2-3 specific demands or relief sought.\n"+
		"Issue: {{.issue}}\n"+
		"Additional Context: {{.context}}\n"+
		"Each demand should:\n"+
		"- Be specific and reasonable\n"+
		"- Clearly state what you want the recipient to do\n"+
		"- Include timeframes where appropriate\n"+
		"- Be properly formatted as numbered points\n"+
		"Format the response as:\n"+
		"1. [First demand]\n"+
		"2. [Second demand]\n"+
		"3. [Third demand]",
	issueVars)

var complaintAuthorityPrompt = prompts.NewPromptTemplate(
	"Given the following consumer complaint details, determine the most appropriate authority to address this complaint:\n\n"+
		"Issue: {{.issue}}\n"+
		"Additional Context: {{.context}}\n\n"+
		"Respond with just the name and designation of the most appropriate authority (e.g., 'The District Consumer Disputes Redressal Commission, [City]').",
	issueVars)
