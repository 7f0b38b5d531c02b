package flows

const transcribePrompt = `You are a meticulous meeting transcriber.

Transcribe the attached audio recording of a meeting word for word. Keep the speakers'
wording, do not summarise, and do not add commentary.

Return a JSON object with the full transcription as a string under the key "transcription".`

const summarizePrompt = `You are an expert meeting summarizer. Please provide a concise summary of the key discussion points from the following meeting transcript:

Transcript: {{.Transcript}}`

const objectionsPrompt = `You are an AI expert in analyzing meeting transcripts to extract client pain points, objections, and resolutions.

Analyze the following meeting transcript and extract a list of client pain points, objections, and resolutions.  Be as concise as possible.  Each should be a short sentence.

Transcript: {{.Transcript}}`

const actionItemsPrompt = `You are an AI assistant tasked with extracting action items from meeting transcripts.

Given the following meeting transcript, identify and list all action items and follow-up tasks.

Transcript:
{{.Transcript}}

Please provide a list of action items, each representing a specific task or follow-up mentioned in the transcript.
Format the output as a JSON object with an array of strings under the key "actionItems".`
