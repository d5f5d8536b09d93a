package service

// System prompts and schema templates for the structured extraction and
// letter generation calls. The templates are shown to the model verbatim so
// it mirrors the exact key set back.

const systemMessage = `You are an expert career counselor and professional writer specializing in creating compelling, personalized cover letters.

Your role is to:
1. Analyze resumes to extract key skills, experiences, and achievements
2. Analyze job descriptions to identify requirements and company culture
3. Create tailored cover letters that bridge the gap between candidate and position
4. Use professional, engaging language that demonstrates value proposition
5. Structure cover letters with proper formatting in markdown

Always maintain a professional tone while being authentic and specific to the candidate's background and the job requirements.`

const resumeAnalysisPrompt = `You are a resume analysis expert. Extract information and return only valid JSON.`

const jobAnalysisPrompt = `You are a job market analyst. Extract information and return only valid JSON.`

const resumeTemplate = `{
  "name": "Full name",
  "email": "Email address",
  "phone": "Phone number",
  "location": "City, State/Country",
  "summary": "Professional summary or objective",
  "skills": ["skill1", "skill2", "skill3"],
  "experience": [
    {
      "title": "Job title",
      "company": "Company name",
      "duration": "Start date - End date",
      "description": "Key responsibilities and achievements"
    }
  ],
  "education": [
    {
      "degree": "Degree name",
      "institution": "School/University name",
      "year": "Graduation year"
    }
  ],
  "certifications": ["cert1", "cert2"],
  "achievements": ["achievement1", "achievement2"]
}`

const jobTemplate = `{
  "company_name": "Company name",
  "job_title": "Job title",
  "required_skills": ["skill1", "skill2", "skill3"],
  "preferred_skills": ["skill1", "skill2"],
  "experience_requirements": "Years of experience and level",
  "education_requirements": "Education level required",
  "key_responsibilities": ["responsibility1", "responsibility2"],
  "company_culture": "Company values and culture indicators",
  "benefits": ["benefit1", "benefit2"],
  "location": "Job location",
  "employment_type": "Full-time, Part-time, etc."
}`

// MinutesSummaryPrompt and ActionItemsPrompt drive the two passes of the
// meeting-minutes workflow.
const MinutesSummaryPrompt = `You are an expert meeting analyst. Create a comprehensive, professional meeting summary that includes:

1. Meeting Overview
2. Key Discussion Points
3. Decisions Made
4. Important Information Shared
5. Next Steps Overview

Format the summary in a clear, professional manner suitable for meeting minutes.
Use bullet points and clear headings for easy reading.
Focus on actionable information and key outcomes.`

const ActionItemsPrompt = `You are an expert at extracting action items from meeting transcriptions. Identify every task, commitment, or follow-up that was agreed on.

For each action item include:
- What needs to be done
- Who is responsible (if mentioned)
- Any deadline or timeframe (if mentioned)

Format the output as a markdown bullet list. If no action items were discussed, say so explicitly.`
