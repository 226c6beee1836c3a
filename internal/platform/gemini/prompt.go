package gemini

// defaultSystemPrompt instructs the model to convert one command
// documentation string into the fixed record shape. The worked example
// anchors the field semantics; the response MIME type forces JSON output.
const defaultSystemPrompt = `The user will provide the documentation for one command. Parse it into
structured data with the following fields:
- signature: the command's full signature
- commandBase: the base part of the command
- description: a brief description of the command
- examples: a list of usage examples, each with description and command fields
- note: any additional remarks

EXAMPLE INPUT:
copy [source] [destination] [options]
Copies files from source to destination.
--- Example ---
Description: Copy a file to a new location
Command: copy file.txt /new/location/file.txt
--- Example ---
Description: Copy a file with verbose output
Command: copy file.txt /new/location/file.txt --verbose
--- Note ---
Ensure you have the necessary permissions to copy files.

EXAMPLE JSON OUTPUT:
{
    "signature": "copy [source] [destination] [options]",
    "commandBase": "copy",
    "description": "Copies files from source to destination.",
    "examples": [
        {
            "description": "Copy a file to a new location",
            "command": "copy file.txt /new/location/file.txt"
        },
        {
            "description": "Copy a file with verbose output",
            "command": "copy file.txt /new/location/file.txt --verbose"
        }
    ],
    "note": "Ensure you have the necessary permissions to copy files."
}`
